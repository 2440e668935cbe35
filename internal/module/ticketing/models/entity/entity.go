package entity

import (
	"database/sql"
	"time"

	"ticketing-service/internal/pkg/pricing"

	"github.com/shopspring/decimal"
)

const (
	TicketStatusActive               = "active"
	TicketStatusRefunded             = "refunded"
	TicketStatusManualRefundRequired = "manual_refund_required"

	RefundStatusProcessed      = "processed"
	RefundStatusManualRequired = "manual_required"
)

// Ticket sources, in lookup priority order.
const (
	SourcePrivate = "private"
	SourceGeneric = "generic"
	SourcePaid    = "paid"
	SourceFree    = "free"
)

type Ticket struct {
	ID               string              `db:"id"`
	Source           string              `db:"source"`
	Reference        sql.NullString      `db:"reference"`
	PaymentReference sql.NullString      `db:"payment_reference"`
	TransactionID    sql.NullString      `db:"transaction_id"`
	TicketCode       string              `db:"ticket_code"`
	EventID          string              `db:"event_id"`
	TierID           string              `db:"ticket_tier_id"`
	TicketType       string              `db:"ticket_type"`
	CustomerName     string              `db:"customer_name"`
	CustomerEmail    string              `db:"customer_email"`
	CustomerPhone    sql.NullString      `db:"customer_phone"`
	Quantity         int                 `db:"quantity"`
	PricePaid        decimal.NullDecimal `db:"price_paid"`
	Status           string              `db:"status"`
	PurchasedAt      time.Time           `db:"purchased_at"`
}

// PaymentRef returns the first usable provider reference for refunds.
func (t Ticket) PaymentRef() string {
	for _, ref := range []sql.NullString{t.PaymentReference, t.TransactionID, t.Reference} {
		if ref.Valid && ref.String != "" {
			return ref.String
		}
	}
	return ""
}

func (t Ticket) Price() decimal.Decimal {
	if !t.PricePaid.Valid {
		return decimal.Zero
	}
	return t.PricePaid.Decimal
}

type Event struct {
	ID                     string              `db:"id"`
	Title                  string              `db:"title"`
	OrganizerEmail         sql.NullString      `db:"organizer_email"`
	EarlyBirdEnabled       bool                `db:"early_bird_enabled"`
	EarlyBirdDiscount      decimal.NullDecimal `db:"early_bird_discount"`
	EarlyBirdStartDate     sql.NullTime        `db:"early_bird_start_date"`
	EarlyBirdEndDate       sql.NullTime        `db:"early_bird_end_date"`
	MultipleBuysEnabled    bool                `db:"multiple_buys_enabled"`
	MultipleBuysDiscount   decimal.NullDecimal `db:"multiple_buys_discount"`
	MultipleBuysMinTickets sql.NullInt64       `db:"multiple_buys_min_tickets"`
}

func (e Event) DiscountConfig() pricing.DiscountConfig {
	cfg := pricing.DiscountConfig{
		EarlyBirdEnabled: e.EarlyBirdEnabled,
		EarlyBirdPercent: e.EarlyBirdDiscount.Decimal,
		VolumeEnabled:    e.MultipleBuysEnabled,
		VolumePercent:    e.MultipleBuysDiscount.Decimal,
	}
	if e.EarlyBirdStartDate.Valid {
		start := e.EarlyBirdStartDate.Time
		cfg.EarlyBirdStart = &start
	}
	if e.EarlyBirdEndDate.Valid {
		end := e.EarlyBirdEndDate.Time
		cfg.EarlyBirdEnd = &end
	}
	if e.MultipleBuysMinTickets.Valid {
		cfg.VolumeMinQuantity = int(e.MultipleBuysMinTickets.Int64)
	}
	return cfg
}

type TicketTier struct {
	ID           string          `db:"id"`
	EventID      string          `db:"event_id"`
	Name         string          `db:"name"`
	Price        decimal.Decimal `db:"price"`
	QuantitySold int             `db:"quantity_sold"`
}

// Refund rows are append-only.
type Refund struct {
	ID                string          `db:"id"`
	TicketID          sql.NullString  `db:"ticket_id"`
	TicketReference   sql.NullString  `db:"ticket_reference"`
	EventID           sql.NullString  `db:"event_id"`
	Amount            decimal.Decimal `db:"amount"`
	PaymentReference  sql.NullString  `db:"payment_reference"`
	ProviderReference sql.NullString  `db:"provider_reference"`
	Reason            string          `db:"reason"`
	Status            string          `db:"status"`
	BuyerName         string          `db:"buyer_name"`
	BuyerEmail        string          `db:"buyer_email"`
	CreatedAt         time.Time       `db:"created_at"`
}

type Transaction struct {
	ID             string          `db:"id"`
	Reference      string          `db:"reference"`
	TicketID       string          `db:"ticket_id"`
	EventID        string          `db:"event_id"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	FeePercentage  decimal.Decimal `db:"fee_percentage"`
	FeeAmount      decimal.Decimal `db:"fee_amount"`
	AmountWithFee  decimal.Decimal `db:"amount_with_fee"`
	CustomerTotal  decimal.Decimal `db:"customer_total"`
	AmountCharged  decimal.Decimal `db:"amount_charged"`
	Currency       string          `db:"currency"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Notification struct {
	UserEmail string
	Title     string
	Message   string
	Kind      string
}
