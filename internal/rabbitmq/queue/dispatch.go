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

	"github.com/ccandelora/randomment/internal/config"
)

// DispatchMessage is published once per claimed schedule and consumed by
// the delivery workers. The claim in the schedule store already happened
// by the time this message exists, so delivery is at most once per cycle.
type DispatchMessage struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	UserID     uuid.UUID `json:"user_id"`
	DueAt      time.Time `json:"due_at"`
}

// DispatchQueue wires the dispatch exchange, the main queue with its retry
// queue and DLQ, and exposes a publisher and a consumer over them.
type DispatchQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer

	routingKey string
}

// NewDispatchQueue declares the dispatch topology on the given channel.
func NewDispatchQueue(ch *rabbitmq.Channel, cfg *config.Config) (*DispatchQueue, error) {
	mq := cfg.RabbitMQ

	exchange := rabbitmq.NewExchange(mq.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(mq.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mq.Queue,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(mq.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mq.DLQ,
	}

	mainQ, err := qm.DeclareQueue(mq.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, mq.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DispatchQueue{Publisher: pub, Consumer: cons, routingKey: mq.RoutingKey}, nil
}

// Publish enqueues a dispatch message for the delivery workers.
func (q *DispatchQueue) Publish(msg DispatchMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes dispatch messages into out until the channel closes.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- DispatchMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg DispatchMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- msg:
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
