package usecases

import (
	"testing"

	"ticketing-service/internal/pkg/paystack"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetadata(t *testing.T) {
	t.Run("snake case wins over camel case", func(t *testing.T) {
		m := extractMetadata(paystack.Transaction{
			Metadata: json.RawMessage(`{"eventId":"camel","event_id":"snake","quantity":3,"base_amount":"4500.50"}`),
		})
		assert.Equal(t, "snake", m.EventID)
		assert.Equal(t, 3, m.Quantity)
		require.NotNil(t, m.BaseAmount)
		assert.Equal(t, "4500.5", m.BaseAmount.String())
	})

	t.Run("top level wins over custom fields", func(t *testing.T) {
		m := extractMetadata(paystack.Transaction{
			Metadata: json.RawMessage(`{"event_id":"top","custom_fields":[{"variable_name":"event_id","value":"field"},{"variable_name":"ticket_type","value":"VIP"}]}`),
		})
		assert.Equal(t, "top", m.EventID)
		assert.Equal(t, "VIP", m.TicketType)
	})

	t.Run("customer metadata is the last resort", func(t *testing.T) {
		m := extractMetadata(paystack.Transaction{
			Customer: paystack.Customer{
				Email:    "ada@example.com",
				Metadata: json.RawMessage(`{"event_id":"from-customer","customer_name":"Ada O."}`),
			},
		})
		assert.Equal(t, "from-customer", m.EventID)
		assert.Equal(t, "Ada O.", m.CustomerName)
	})

	t.Run("stringified metadata", func(t *testing.T) {
		m := extractMetadata(paystack.Transaction{
			Metadata: json.RawMessage(`"{\"event_id\":\"evt-9\",\"ticketTierId\":\"tier-9\"}"`),
		})
		assert.Equal(t, "evt-9", m.EventID)
		assert.Equal(t, "tier-9", m.TierID)
	})

	t.Run("name falls back to customer names then email", func(t *testing.T) {
		m := extractMetadata(paystack.Transaction{Customer: paystack.Customer{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com"}})
		assert.Equal(t, "Ada Obi", m.CustomerName)

		m = extractMetadata(paystack.Transaction{Customer: paystack.Customer{Email: "ada@example.com"}})
		assert.Equal(t, "ada@example.com", m.CustomerName)
	})

	t.Run("bad quantity and amount use defaults", func(t *testing.T) {
		m := extractMetadata(paystack.Transaction{Metadata: json.RawMessage(`{"quantity":"many","base_amount":"-5"}`)})
		assert.Equal(t, 1, m.Quantity)
		assert.Nil(t, m.BaseAmount)
	})
}

func TestIsTierID(t *testing.T) {
	assert.True(t, isTierID("9e3f6d2a-7c41-4b8e-a5d2-0c1b2e3f4a55"))
	assert.False(t, isTierID("9e3f6d2a7c414b8ea5d20c1b2e3f4a55"))
	assert.False(t, isTierID("vip"))
	assert.False(t, isTierID(""))
}
