package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation       Kind = "validation_error"
	KindNotFound         Kind = "not_found"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindExternalProvider Kind = "external_provider_error"
	KindPersistence      Kind = "persistence_error"
	KindConflict         Kind = "conflict"
	KindInternal         Kind = "internal_server_error"
)

// Error carries the HTTP status a handler should answer with.
type Error struct {
	Code    int
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Domain conditions shared by the pricing, ticketing and payout modules.
var (
	ErrInvalidAmount        = BadRequest("amount must be a finite, non-negative number")
	ErrTicketNotFound       = NotFound("ticket not found")
	ErrAlreadyRefunded      = BadRequest("ticket has already been refunded")
	ErrNotPaid              = BadRequest("ticket was not paid for, nothing to refund")
	ErrMissingEventMetadata = BadRequest("event id missing from payment metadata")
	ErrNoTicketTier         = NotFound("no ticket tier available for this event")
	ErrInvalidTierID        = BadRequest("invalid ticket tier id")

	// ErrDuplicate is returned by repositories on a unique violation.
	ErrDuplicate = Conflict("record already exists")
)

func BadRequest(msg string) error {
	return &Error{Code: http.StatusBadRequest, Kind: KindValidation, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Code: http.StatusNotFound, Kind: KindNotFound, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &Error{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Code: http.StatusForbidden, Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Code: http.StatusConflict, Kind: KindConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return &Error{Code: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

// ExternalProviderError passes the gateway message through unchanged.
func ExternalProviderError(msg string) error {
	return &Error{Code: http.StatusInternalServerError, Kind: KindExternalProvider, Message: msg}
}

func PersistenceError(msg string) error {
	return &Error{Code: http.StatusInternalServerError, Kind: KindPersistence, Message: msg}
}

// As unwraps err into *Error, falling back to a generic internal error.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: http.StatusInternalServerError, Kind: KindInternal, Message: err.Error()}
}
