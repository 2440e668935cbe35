package main

import (
	"context"
	"log"

	"ticketing-service/config"
	payoutHandler "ticketing-service/internal/module/payout/handler"
	payoutRepositories "ticketing-service/internal/module/payout/repositories"
	payoutUsecases "ticketing-service/internal/module/payout/usecases"
	ticketingHandler "ticketing-service/internal/module/ticketing/handler"
	ticketingRepositories "ticketing-service/internal/module/ticketing/repositories"
	ticketingUsecases "ticketing-service/internal/module/ticketing/usecases"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/http"
	"ticketing-service/internal/pkg/httpclient"
	log_internal "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/mailer"
	"ticketing-service/internal/pkg/messagestream"
	"ticketing-service/internal/pkg/middleware"
	"ticketing-service/internal/pkg/paystack"
	"ticketing-service/internal/pkg/redis"
	"ticketing-service/internal/pkg/scheduler"
	router "ticketing-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, payout := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start scheduler
	sch := scheduler.Scheduler{Log: log_internal.GetLogger()}
	go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
	go sch.StartPeriodic(&cfg.Redis, cfg.Scheduler.PayoutCronSpec)
	go sch.StartHandler(&cfg.Scheduler, &cfg.Redis,
		[]string{scheduler.TypePayoutSweep},
		[]func(ctx context.Context, t *asynq.Task) error{payout.PayoutSweepTask},
	)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *payoutHandler.PayoutHandler) {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redis := redis.SetupClient(&cfg.Redis)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init payment gateway
	gateway := paystack.NewPaystackRepository(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, logger, httpClient)
	// init mailer
	mail := mailer.New(&cfg.Mail)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	ticketingRepo := ticketingRepositories.New(db, logger, redis)
	ticketingUsecase := ticketingUsecases.New(ticketingRepo, gateway, logger, publisher, mail, ticketingUsecases.Options{
		FeePercent:  decimal.NewFromFloat(cfg.Pricing.PlatformFeePercent),
		Currency:    cfg.Paystack.Currency,
		CallbackURL: cfg.Paystack.CallbackURL,
	})

	payoutRepo := payoutRepositories.New(db, logger, redis)
	payoutUsecase := payoutUsecases.New(payoutRepo, gateway, logger, payoutUsecases.Options{
		MinAge: cfg.Cron.PayoutMinAge,
	})

	middleware := middleware.Middleware{
		Log:         log_internal.Setup(),
		JWTSecret:   cfg.Auth.JWTSecret,
		CronSecret:  cfg.Cron.Secret,
		RefundRoles: cfg.Auth.RefundRoles,
	}

	validator := validator.New()
	handlerTicketing := ticketingHandler.TicketingHandler{
		Log:       log_internal.Setup(),
		Validator: validator,
		Usecase:   ticketingUsecase,
		Publish:   publisher,
	}
	handlerPayout := payoutHandler.PayoutHandler{
		Log:     log_internal.Setup(),
		Usecase: payoutUsecase,
	}

	var messageRouters []*message.Router

	ticketIssuedRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "ticket_issued_handler", messagestream.TopicTicketIssued, subscriber, handlerTicketing.ConsumeTicketEventQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create ticket_issued router", err)
	}

	ticketRefundedRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "ticket_refunded_handler", messagestream.TopicTicketRefunded, subscriber, handlerTicketing.ConsumeTicketEventQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create ticket_refunded router", err)
	}

	messageRouters = append(messageRouters, ticketIssuedRouter, ticketRefundedRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &handlerTicketing, &handlerPayout, &middleware)

	return r, messageRouters, &handlerPayout

}
