package request

import "github.com/goccy/go-json"

type CartItem struct {
	TierID   string `json:"tier_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type QuoteCheckout struct {
	EventID string     `json:"event_id" validate:"required"`
	Items   []CartItem `json:"items" validate:"required,min=1,dive"`
}

// CalculateFee keeps amount raw so both numbers and numeric strings are accepted.
type CalculateFee struct {
	Amount        json.RawMessage `json:"amount" validate:"required"`
	FeePercentage *float64        `json:"fee_percentage" validate:"omitempty,gte=0,lte=100"`
}

type InitializePayment struct {
	EventID string     `json:"event_id" validate:"required"`
	Email   string     `json:"email" validate:"required,email"`
	Name    string     `json:"name" validate:"required"`
	Phone   string     `json:"phone"`
	Items   []CartItem `json:"items" validate:"required,min=1,dive"`
}

type VerifyPayment struct {
	Reference string `json:"reference" validate:"required"`
	// ProviderResponse is accepted for compatibility but never trusted.
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}

type RegisterFreeTicket struct {
	EventID   string `json:"event_id" validate:"required"`
	TierID    string `json:"tier_id"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Reference string `json:"reference"`
}

type RefundTicket struct {
	TicketID      string   `json:"ticket_id" validate:"required_without=TransactionID"`
	TransactionID string   `json:"transaction_id" validate:"required_without=TicketID"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	Reason        string   `json:"reason" validate:"omitempty,max=500"`
}

// TicketEvent is published on ticket_issued and ticket_refunded.
type TicketEvent struct {
	Type          string  `json:"type" validate:"required"`
	TicketID      string  `json:"ticket_id"`
	Reference     string  `json:"reference"`
	EventID       string  `json:"event_id"`
	EventTitle    string  `json:"event_title"`
	TicketCode    string  `json:"ticket_code"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	Amount        float64 `json:"amount"`
}

type PoisonedQueue struct {
	TopicTarget string `json:"topic_target"`
	ErrorMsg    string `json:"error_msg"`
	Payload     []byte `json:"payload"`
}
