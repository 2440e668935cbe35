package helpers

import (
	"fmt"
	"strings"
	"ticketing-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v3"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespError converts err into the failure envelope. Errors that are not
// *errors.Error are answered with 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	e := errors.As(err)
	if e.Code >= fiber.StatusInternalServerError && log != nil {
		log.Ctx(ctx.UserContext()).Error("request failed",
			zap.String("kind", string(e.Kind)),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
	}

	return ctx.Status(e.Code).JSON(Response{
		Success: false,
		Message: e.Message,
		Error:   string(e.Kind),
	})
}

const maxCodePrefix = 12

// GenerateTicketCode builds a readable code such as "SUMMER-JAM-7K2M9QXA".
func GenerateTicketCode(eventTitle string) string {
	prefix := strings.ToUpper(slug.Make(eventTitle))
	if len(prefix) > maxCodePrefix {
		prefix = strings.TrimRight(prefix[:maxCodePrefix], "-")
	}
	if prefix == "" {
		prefix = "TICKET"
	}

	suffix := strings.ToUpper(shortuuid.New())
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}

	return fmt.Sprintf("%s-%s", prefix, suffix)
}

// GeneratePaymentReference returns the reference sent to the provider when a checkout starts.
func GeneratePaymentReference() string {
	return "TKT-" + strings.ToUpper(shortuuid.New())
}

// GenerateFreeReference returns a reference for tickets that never touched a payment provider.
func GenerateFreeReference() string {
	return "FREE-" + shortuuid.New()
}
