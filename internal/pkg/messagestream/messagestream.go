package messagestream

import (
	"fmt"
	"ticketing-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

const (
	TopicTicketIssued   = "ticket_issued"
	TopicTicketRefunded = "ticket_refunded"
	TopicPoisoned       = "poisoned_queue"
)

type Ampq struct {
	uri    string
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Ampq {
	return &Ampq{
		uri:    fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port),
		logger: NewZapLoggerAdapter(),
	}
}

func (a *Ampq) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(amqp.NewDurableQueueConfig(a.uri), a.logger)
}

func (a *Ampq) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(amqp.NewDurableQueueConfig(a.uri), a.logger)
}

// NewRouter wires one handler on topic. Messages whose handler returns an error
// are moved to poisonedTopic instead of being redelivered forever.
func NewRouter(publisher message.Publisher, poisonedTopic, handlerName, topic string, subscriber message.Subscriber, handlerFunc func(msg *message.Message) error) (*message.Router, error) {
	logger := NewZapLoggerAdapter()

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonedTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.CorrelationID,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
