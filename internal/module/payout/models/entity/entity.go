package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentRequestApproved = "approved"
	PaymentRequestPaid     = "paid"
	PaymentRequestFailed   = "failed"
)

// PaymentRequest is an organizer's request to withdraw ticket revenue.
type PaymentRequest struct {
	ID             string          `db:"id"`
	UserID         sql.NullString  `db:"user_id"`
	OrganizerEmail string          `db:"organizer_email"`
	Amount         decimal.Decimal `db:"amount"`
	RecipientCode  sql.NullString  `db:"recipient_code"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Notification struct {
	UserEmail string
	Title     string
	Message   string
	Kind      string
}
