package response

type FeeBreakdown struct {
	OriginalAmount float64 `json:"original_amount"`
	FeePercentage  float64 `json:"fee_percentage"`
	FeeAmount      float64 `json:"fee_amount"`
	AmountWithFee  float64 `json:"amount_with_fee"`
	CustomerTotal  float64 `json:"customer_total"`
}

type Quote struct {
	EventID            string  `json:"event_id"`
	Subtotal           float64 `json:"subtotal"`
	Quantity           int     `json:"quantity"`
	EarlyBirdDiscount  float64 `json:"early_bird_discount"`
	VolumeDiscount     float64 `json:"volume_discount"`
	Discount           float64 `json:"discount"`
	DiscountType       string  `json:"discount_type"`
	DiscountedSubtotal float64 `json:"discounted_subtotal"`
	ServiceFee         float64 `json:"service_fee"`
	Total              float64 `json:"total"`
	IsFree             bool    `json:"is_free"`
}

type InitializePayment struct {
	AuthorizationURL string  `json:"authorization_url"`
	AccessCode       string  `json:"access_code"`
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"`
	Quote            Quote   `json:"quote"`
}

type Ticket struct {
	ID            string  `json:"id"`
	Reference     string  `json:"reference"`
	TicketCode    string  `json:"ticket_code"`
	Source        string  `json:"source"`
	EventID       string  `json:"event_id"`
	TierID        string  `json:"ticket_tier_id"`
	TicketType    string  `json:"ticket_type"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	Quantity      int     `json:"quantity"`
	PricePaid     float64 `json:"price_paid"`
	Status        string  `json:"status"`
	PurchasedAt   string  `json:"purchased_at"`
}

type VerifyPayment struct {
	Reference        string  `json:"reference"`
	AlreadyProcessed bool    `json:"already_processed"`
	Ticket           *Ticket `json:"ticket,omitempty"`
}

type FreeTicket struct {
	Reference        string  `json:"reference"`
	AlreadyProcessed bool    `json:"already_processed"`
	Ticket           *Ticket `json:"ticket,omitempty"`
}

type Refund struct {
	ID                string  `json:"id"`
	TicketID          string  `json:"ticket_id,omitempty"`
	Reference         string  `json:"reference,omitempty"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	ProviderReference string  `json:"provider_reference,omitempty"`
	ManualRequired    bool    `json:"manual_required"`
}
