package usecases

import (
	"strconv"
	"strings"

	"ticketing-service/internal/pkg/paystack"

	"github.com/shopspring/decimal"
)

type paymentMetadata struct {
	EventID      string
	TierID       string
	TicketType   string
	CustomerName string
	Phone        string
	Quantity     int
	BaseAmount   *decimal.Decimal
}

type metadataSources []map[string]interface{}

// extractMetadata searches transaction metadata, then its custom_fields, then
// the customer's metadata. Snake case keys win over camel case ones.
func extractMetadata(tx paystack.Transaction) paymentMetadata {
	meta := paystack.DecodeMetadata(tx.Metadata)
	sources := metadataSources{meta, customFields(meta), paystack.DecodeMetadata(tx.Customer.Metadata)}

	m := paymentMetadata{
		EventID:      sources.lookup("event_id", "eventId"),
		TierID:       sources.lookup("ticket_tier_id", "ticketTierId", "tier_id", "tierId"),
		TicketType:   sources.lookup("ticket_type", "ticketType"),
		CustomerName: sources.lookup("customer_name", "customerName", "full_name", "fullName"),
		Phone:        sources.lookup("customer_phone", "customerPhone", "phone"),
		Quantity:     1,
	}

	if q, err := strconv.Atoi(sources.lookup("quantity")); err == nil && q > 0 {
		m.Quantity = q
	}

	if raw := sources.lookup("base_amount", "baseAmount"); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil && amount.IsPositive() {
			m.BaseAmount = &amount
		}
	}

	if m.CustomerName == "" {
		m.CustomerName = strings.TrimSpace(tx.Customer.FirstName + " " + tx.Customer.LastName)
	}
	if m.CustomerName == "" {
		m.CustomerName = tx.Customer.Email
	}
	if m.Phone == "" {
		m.Phone = tx.Customer.Phone
	}

	return m
}

func (s metadataSources) lookup(keys ...string) string {
	for _, source := range s {
		for _, key := range keys {
			if v := stringify(source[key]); v != "" {
				return v
			}
		}
	}
	return ""
}

func customFields(meta map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	fields, ok := meta["custom_fields"].([]interface{})
	if !ok {
		return out
	}
	for _, f := range fields {
		field, ok := f.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := field["variable_name"].(string)
		if name != "" {
			out[name] = field["value"]
		}
	}
	return out
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}
