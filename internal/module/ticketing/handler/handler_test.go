package handler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"ticketing-service/internal/module/ticketing/handler"
	"ticketing-service/internal/module/ticketing/mocks"
	"ticketing-service/internal/module/ticketing/models/request"
	"ticketing-service/internal/module/ticketing/models/response"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	log_internal "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var (
	h   *handler.TicketingHandler
	ucm *mocks.Usecase
	app *fiber.App
	p   *mockPublisher
)

type mockPublisher struct {
	topics []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.topics = append(m.topics, topic)
	return nil
}

func setup() {
	ucm = &mocks.Usecase{}
	p = &mockPublisher{}
	h = &handler.TicketingHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
}

func teardown() {
	ucm = nil
	p = nil
	h = nil
	app = nil
}

func newCtx(method, uri string, body []byte) *fiber.Ctx {
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	ctx.Request().SetRequestURI(uri)
	ctx.Request().Header.SetContentType("application/json")
	ctx.Request().Header.SetMethod(method)
	ctx.Request().SetBody(body)
	return ctx
}

func decode(t *testing.T, ctx *fiber.Ctx) helpers.Response {
	t.Helper()
	var resp helpers.Response
	require.NoError(t, json.Unmarshal(ctx.Response().Body(), &resp))
	return resp
}

func TestQuoteCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.QuoteCheckout{
			EventID: "evt-1",
			Items:   []request.CartItem{{TierID: "tier-1", Quantity: 2}},
		}
		jsonData, _ := json.Marshal(payload)
		ctx := newCtx("POST", "/api/v1/checkout/quote", jsonData)
		defer app.ReleaseCtx(ctx)

		ucm.On("QuoteCheckout", mock.Anything, &payload).Return(response.Quote{EventID: "evt-1", Total: 8180}, nil)

		err := h.QuoteCheckout(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		assert.True(t, decode(t, ctx).Success)
	})

	t.Run("empty cart", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/checkout/quote", []byte(`{"event_id":"evt-1","items":[]}`))
		defer app.ReleaseCtx(ctx)

		err := h.QuoteCheckout(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "QuoteCheckout", mock.Anything, mock.Anything)
	})
}

func TestCalculateFee(t *testing.T) {
	t.Run("string amount", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/fees/calculate", []byte(`{"amount":"5000"}`))
		defer app.ReleaseCtx(ctx)

		ucm.On("CalculateFee", mock.Anything, mock.MatchedBy(func(req *request.CalculateFee) bool {
			return string(req.Amount) == `"5000"` && req.FeePercentage == nil
		})).Return(response.FeeBreakdown{OriginalAmount: 5000, FeePercentage: 3, FeeAmount: 150, AmountWithFee: 5150, CustomerTotal: 5150}, nil)

		err := h.CalculateFee(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("invalid amount", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/fees/calculate", []byte(`{"amount":"abc"}`))
		defer app.ReleaseCtx(ctx)

		ucm.On("CalculateFee", mock.Anything, mock.Anything).Return(response.FeeBreakdown{}, errors.ErrInvalidAmount)

		err := h.CalculateFee(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		assert.Equal(t, string(errors.KindValidation), decode(t, ctx).Error)
	})
}

func TestVerifyPayment(t *testing.T) {
	t.Run("already processed", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.VerifyPayment{Reference: "ref_123"}
		jsonData, _ := json.Marshal(payload)
		ctx := newCtx("POST", "/api/v1/payments/verify", jsonData)
		defer app.ReleaseCtx(ctx)

		ucm.On("VerifyPayment", mock.Anything, &payload).Return(response.VerifyPayment{Reference: "ref_123", AlreadyProcessed: true}, nil)

		err := h.VerifyPayment(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		assert.Equal(t, "payment already processed", decode(t, ctx).Message)
	})

	t.Run("missing reference", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/payments/verify", []byte(`{}`))
		defer app.ReleaseCtx(ctx)

		err := h.VerifyPayment(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})

	t.Run("provider error is a 500", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/payments/verify", []byte(`{"reference":"ref_404"}`))
		defer app.ReleaseCtx(ctx)

		ucm.On("VerifyPayment", mock.Anything, mock.Anything).Return(response.VerifyPayment{}, errors.ExternalProviderError("Transaction reference not found"))

		err := h.VerifyPayment(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, ctx.Response().StatusCode())
		assert.Equal(t, "Transaction reference not found", decode(t, ctx).Message)
	})

	t.Run("by reference", func(t *testing.T) {
		setup()
		defer teardown()

		app.Get("/api/v1/payments/verify/:reference", h.VerifyPaymentByReference)
		ucm.On("VerifyPayment", mock.Anything, &request.VerifyPayment{Reference: "ref_123"}).
			Return(response.VerifyPayment{Reference: "ref_123", Ticket: &response.Ticket{ID: "tkt-1"}}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/payments/verify/ref_123", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"tkt-1"`)
	})
}

func TestRegisterFreeTicket(t *testing.T) {
	setup()
	defer teardown()

	payload := request.RegisterFreeTicket{EventID: "evt-1", Name: "Ada Obi", Email: "ada@example.com"}
	jsonData, _ := json.Marshal(payload)
	ctx := newCtx("POST", "/api/v1/tickets/free", jsonData)
	defer app.ReleaseCtx(ctx)

	ucm.On("RegisterFreeTicket", mock.Anything, &payload).Return(response.FreeTicket{Reference: "FREE-1", Ticket: &response.Ticket{ID: "tkt-1"}}, nil)

	err := h.RegisterFreeTicket(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	ucm.AssertExpectations(t)
}

func TestRefundTicket(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.RefundTicket{TicketID: "tkt-1", Reason: "event cancelled"}
		jsonData, _ := json.Marshal(payload)
		ctx := newCtx("POST", "/api/v1/refunds", jsonData)
		defer app.ReleaseCtx(ctx)
		ctx.Locals("email_user", "admin@example.com")

		ucm.On("RefundTicket", mock.Anything, &payload, "admin@example.com").Return(response.Refund{ID: "rfd-1", Amount: 4850, Status: "processed"}, nil)

		err := h.RefundTicket(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		ucm.AssertExpectations(t)
	})

	t.Run("needs ticket or transaction", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/refunds", []byte(`{"reason":"no id"}`))
		defer app.ReleaseCtx(ctx)

		err := h.RefundTicket(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "RefundTicket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already refunded", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := newCtx("POST", "/api/v1/refunds", []byte(`{"ticket_id":"tkt-1"}`))
		defer app.ReleaseCtx(ctx)

		ucm.On("RefundTicket", mock.Anything, mock.Anything, "").Return(response.Refund{}, errors.ErrAlreadyRefunded)

		err := h.RefundTicket(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		assert.Equal(t, "ticket has already been refunded", decode(t, ctx).Message)
	})
}

func TestConsumeTicketEventQueue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.TicketEvent{
			Type:          messagestream.TopicTicketIssued,
			TicketID:      "tkt-1",
			CustomerEmail: "ada@example.com",
		}
		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage("123", jsonData)

		ucm.On("ConsumeTicketEvent", mock.Anything, &payload).Return(nil)

		err := h.ConsumeTicketEventQueue(msg)
		assert.NoError(t, err)
		assert.Empty(t, p.topics)
	})

	t.Run("malformed payload is poisoned", func(t *testing.T) {
		setup()
		defer teardown()

		msg := message.NewMessage("124", []byte(`not json`))

		err := h.ConsumeTicketEventQueue(msg)
		assert.NoError(t, err)
		assert.Equal(t, []string{messagestream.TopicPoisoned}, p.topics)
		ucm.AssertNotCalled(t, "ConsumeTicketEvent", mock.Anything, mock.Anything)
	})

	t.Run("usecase error is returned for redelivery", func(t *testing.T) {
		setup()
		defer teardown()

		jsonData := []byte(`{"type":"ticket_refunded","customer_email":"ada@example.com"}`)
		msg := message.NewMessage("125", jsonData)

		ucm.On("ConsumeTicketEvent", mock.Anything, mock.Anything).Return(errors.PersistenceError("error create notification"))

		err := h.ConsumeTicketEventQueue(msg)
		assert.Error(t, err)
	})
}
