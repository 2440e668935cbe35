package handler

import (
	"context"
	"fmt"

	"ticketing-service/internal/module/payout/usecases"
	"ticketing-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PayoutHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

// RunPayoutSweep answers with the sweep summary itself rather than the usual
// data envelope, which is what cron callers read.
func (h *PayoutHandler) RunPayoutSweep(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.RunPayoutSweep(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error run payout sweep: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(resp)
}

func (h *PayoutHandler) PayoutSweepTask(ctx context.Context, t *asynq.Task) error {
	resp, err := h.Usecase.RunPayoutSweep(ctx)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error run scheduled payout sweep: %v", err))
		return err
	}

	h.Log.Ctx(ctx).Info(resp.Message)
	return nil
}
