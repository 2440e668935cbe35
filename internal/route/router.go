package router

import (
	payoutHandler "ticketing-service/internal/module/payout/handler"
	ticketingHandler "ticketing-service/internal/module/ticketing/handler"
	"ticketing-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerTicketing *ticketingHandler.TicketingHandler, handlerPayout *payoutHandler.PayoutHandler, m *middleware.Middleware) *fiber.App {

	app.Use(m.Tracing)

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/checkout/quote", handlerTicketing.QuoteCheckout)
	v1.Post("/fees/calculate", handlerTicketing.CalculateFee)
	v1.Post("/payments/initialize", handlerTicketing.InitializePayment)
	v1.Post("/payments/verify", handlerTicketing.VerifyPayment)
	v1.Get("/payments/verify/:reference", handlerTicketing.VerifyPaymentByReference)
	v1.Post("/tickets/free", handlerTicketing.RegisterFreeTicket)

	// authenticated routes
	v1.Post("/refunds", m.ValidateToken, m.RequireRole(m.RefundRoles...), handlerTicketing.RefundTicket)

	cron := Api.Group("/cron", m.ValidateCronToken)
	cron.Get("/payouts", handlerPayout.RunPayoutSweep)
	cron.Post("/payouts", handlerPayout.RunPayoutSweep)

	return app

}
