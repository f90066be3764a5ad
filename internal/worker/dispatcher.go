package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/model"
	"github.com/ccandelora/randomment/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks
type scheduleService interface {
	ClaimDue(ctx context.Context, strategy retry.Strategy, now time.Time, limit int) ([]model.Schedule, error)
}

type dispatchPublisher interface {
	Publish(msg queue.DispatchMessage, strategy retry.Strategy) error
}

// Dispatcher periodically claims due schedules and hands each one to the
// delivery workers via the dispatch queue. The claim is a conditional
// status transition in the store, so overlapping ticks cannot publish the
// same schedule twice.
type Dispatcher struct {
	service   scheduleService
	publisher dispatchPublisher
	tick      time.Duration
	batch     int
}

func NewDispatcher(s scheduleService, p dispatchPublisher, tick time.Duration, batch int) *Dispatcher {
	return &Dispatcher{
		service:   s,
		publisher: p,
		tick:      tick,
		batch:     batch,
	}
}

// Run claims due schedules on every tick until the context is cancelled.
// A failed tick is logged and simply retried on the next one; unclaimed
// rows stay pending, so nothing is lost.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("dispatcher stopped")
			return
		case <-ticker.C:
			d.dispatchDue(ctx, strategy)
		}
	}
}

func (d *Dispatcher) dispatchDue(ctx context.Context, strategy retry.Strategy) {
	claimed, err := d.service.ClaimDue(ctx, strategy, time.Now(), d.batch)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim due schedules")
		return
	}

	if len(claimed) == 0 {
		return
	}

	zlog.Logger.Printf("claimed %d due schedules", len(claimed))

	for _, s := range claimed {
		msg := queue.DispatchMessage{
			ScheduleID: s.ID,
			UserID:     s.UserID,
			DueAt:      s.NextDueAt,
		}

		// A publish failure after the claim leaves the schedule "sent"
		// without a delivery attempt. The scheduler's unit of work is the
		// attempt, and the next activation produces a fresh cycle.
		if err := d.publisher.Publish(msg, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msgf("failed to publish dispatch for schedule %s", s.ID)
		}
	}
}

type dispatchConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DispatchMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy)
}

// Deliverer runs the pool of delivery workers consuming dispatch messages.
type Deliverer struct {
	queue   dispatchConsumer
	handler messageHandler
}

func NewDeliverer(q dispatchConsumer, h messageHandler) *Deliverer {
	return &Deliverer{
		queue:   q,
		handler: h,
	}
}

func (d *Deliverer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.DispatchMessage)

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("delivery worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("delivery worker-%d shutting down", id)
					return
				case msg := <-msgChan:
					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("deliverer stopped")
}
