package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "notify-exchange"
	MainQueueName  = "notify-events"
	RetryQueueName = "notify-events-retry"
	DLQName        = "notify-events-dlq"
	RoutingKey     = "notify-event"
)

// DomainEvent is the message published by platform services (cron jobs,
// gamification, interventions) when something notification-worthy happens.
// The dispatcher fans each event out to the broadcaster and the webhook
// pipeline.
type DomainEvent struct {
	ID           uuid.UUID      `json:"id"`
	Type         string         `json:"type"`
	UserID       string         `json:"user_id,omitempty"`
	DepartmentID string         `json:"department_id,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

// EventQueue wraps the durable RabbitMQ topology used for domain event
// intake: a main queue dead-lettering into the DLQ, and a retry queue whose
// TTL dead-letters messages back into the main queue.
type EventQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewEventQueue declares the exchange and queues on the channel.
func NewEventQueue(ch *rabbitmq.Channel) (*EventQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &EventQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues one domain event.
func (q *EventQueue) Publish(event DomainEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes incoming events onto out until ctx is done.
func (q *EventQueue) Consume(ctx context.Context, out chan<- DomainEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go decodeLoop(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// decodeLoop unmarshals raw messages onto out. It returns once ctx is done
// or in is closed; the forward onto out also selects against ctx so the
// goroutine cannot hang on a full channel after the workers have exited.
func decodeLoop(ctx context.Context, in <-chan []byte, out chan<- DomainEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			var event DomainEvent
			if err := json.Unmarshal(m, &event); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal event")
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- event:
			}
		}
	}
}
