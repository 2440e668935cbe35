package handler

import (
	"fmt"

	"ticketing-service/internal/module/ticketing/models/request"
	"ticketing-service/internal/module/ticketing/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type TicketingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *TicketingHandler) QuoteCheckout(ctx *fiber.Ctx) error {
	var req request.QuoteCheckout
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.QuoteCheckout(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote checkout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote checkout")
}

func (h *TicketingHandler) CalculateFee(ctx *fiber.Ctx) error {
	var req request.CalculateFee
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CalculateFee(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success calculate fee")
}

func (h *TicketingHandler) InitializePayment(ctx *fiber.Ctx) error {
	var req request.InitializePayment
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.InitializePayment(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error initialize payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success initialize payment")
}

func (h *TicketingHandler) VerifyPayment(ctx *fiber.Ctx) error {
	var req request.VerifyPayment
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return h.verify(ctx, &req)
}

// VerifyPaymentByReference serves the provider callback redirect.
func (h *TicketingHandler) VerifyPaymentByReference(ctx *fiber.Ctx) error {
	req := request.VerifyPayment{Reference: ctx.Params("reference")}
	if req.Reference == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("reference is required"))
	}

	return h.verify(ctx, &req)
}

func (h *TicketingHandler) verify(ctx *fiber.Ctx, req *request.VerifyPayment) error {
	resp, err := h.Usecase.VerifyPayment(ctx.UserContext(), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error verify payment %s: %v", req.Reference, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if resp.AlreadyProcessed {
		return helpers.RespSuccess(ctx, h.Log, resp, "payment already processed")
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success verify payment")
}

func (h *TicketingHandler) RegisterFreeTicket(ctx *fiber.Ctx) error {
	var req request.RegisterFreeTicket
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.RegisterFreeTicket(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register free ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if resp.AlreadyProcessed {
		return helpers.RespSuccess(ctx, h.Log, resp, "ticket already registered")
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success register free ticket")
}

func (h *TicketingHandler) RefundTicket(ctx *fiber.Ctx) error {
	var req request.RefundTicket
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	emailUser, _ := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.RefundTicket(ctx.UserContext(), &req, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error refund ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if resp.ManualRequired {
		return helpers.RespSuccess(ctx, h.Log, resp, "ticket has no payment reference, manual refund required")
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success refund ticket")
}

// ConsumeTicketEventQueue handles both ticket_issued and ticket_refunded.
// Malformed payloads go straight to the poisoned queue.
func (h *TicketingHandler) ConsumeTicketEventQueue(msg *message.Message) error {
	ctx := msg.Context()

	var req request.TicketEvent
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.poison(msg, err)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate message: %v", err))
		return h.poison(msg, err)
	}

	if err := h.Usecase.ConsumeTicketEvent(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error consume ticket event: %v", err))
		return err
	}

	return nil
}

func (h *TicketingHandler) poison(msg *message.Message, cause error) error {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: msg.Metadata.Get("topic"),
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish(messagestream.TopicPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		return err
	}

	return nil
}

func (h *TicketingHandler) parse(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.BadRequest(err.Error())
	}

	return nil
}
