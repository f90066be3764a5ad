package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/ccandelora/randomment/internal/mocks/worker"
	"github.com/ccandelora/randomment/internal/model"
	"github.com/ccandelora/randomment/internal/rabbitmq/queue"
)

func TestDispatcher_DispatchDue_PublishesEachClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockscheduleService(ctrl)
	publisherMock := mocks.NewMockdispatchPublisher(ctrl)

	d := NewDispatcher(serviceMock, publisherMock, time.Minute, 100)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s1 := model.Schedule{ID: uuid.New(), UserID: uuid.New(), NextDueAt: time.Now().Add(-time.Minute)}
	s2 := model.Schedule{ID: uuid.New(), UserID: uuid.New(), NextDueAt: time.Now().Add(-time.Second)}

	serviceMock.EXPECT().
		ClaimDue(gomock.Any(), strategy, gomock.Any(), 100).
		Return([]model.Schedule{s1, s2}, nil)

	publisherMock.EXPECT().
		Publish(queue.DispatchMessage{ScheduleID: s1.ID, UserID: s1.UserID, DueAt: s1.NextDueAt}, strategy).
		Return(nil)
	publisherMock.EXPECT().
		Publish(queue.DispatchMessage{ScheduleID: s2.ID, UserID: s2.UserID, DueAt: s2.NextDueAt}, strategy).
		Return(nil)

	d.dispatchDue(context.Background(), strategy)
}

func TestDispatcher_DispatchDue_NothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockscheduleService(ctrl)
	publisherMock := mocks.NewMockdispatchPublisher(ctrl)

	d := NewDispatcher(serviceMock, publisherMock, time.Minute, 100)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().
		ClaimDue(gomock.Any(), strategy, gomock.Any(), 100).
		Return(nil, nil)

	// No publish expected; a quiet tick is a no-op.
	d.dispatchDue(context.Background(), strategy)
}

func TestDispatcher_DispatchDue_ClaimErrorSkipsTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockscheduleService(ctrl)
	publisherMock := mocks.NewMockdispatchPublisher(ctrl)

	d := NewDispatcher(serviceMock, publisherMock, time.Minute, 100)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().
		ClaimDue(gomock.Any(), strategy, gomock.Any(), 100).
		Return(nil, errors.New("store unreachable"))

	// The failed tick is logged and dropped; unclaimed rows stay pending
	// for the next tick, so no publish happens now.
	d.dispatchDue(context.Background(), strategy)
}

func TestDispatcher_DispatchDue_PublishFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockscheduleService(ctrl)
	publisherMock := mocks.NewMockdispatchPublisher(ctrl)

	d := NewDispatcher(serviceMock, publisherMock, time.Minute, 100)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s1 := model.Schedule{ID: uuid.New(), UserID: uuid.New(), NextDueAt: time.Now()}
	s2 := model.Schedule{ID: uuid.New(), UserID: uuid.New(), NextDueAt: time.Now()}

	serviceMock.EXPECT().
		ClaimDue(gomock.Any(), strategy, gomock.Any(), 100).
		Return([]model.Schedule{s1, s2}, nil)

	// One user's publish failing must not stop the rest of the tick.
	publisherMock.EXPECT().
		Publish(queue.DispatchMessage{ScheduleID: s1.ID, UserID: s1.UserID, DueAt: s1.NextDueAt}, strategy).
		Return(errors.New("broker unavailable"))
	publisherMock.EXPECT().
		Publish(queue.DispatchMessage{ScheduleID: s2.ID, UserID: s2.UserID, DueAt: s2.NextDueAt}, strategy).
		Return(nil)

	d.dispatchDue(context.Background(), strategy)
}

// casClaimStore hands its single due schedule to exactly one claimer, the
// way the conditional UPDATE in the store transitions a row once.
type casClaimStore struct {
	claimed  atomic.Bool
	schedule model.Schedule
}

func (s *casClaimStore) ClaimDue(context.Context, retry.Strategy, time.Time, int) ([]model.Schedule, error) {
	if !s.claimed.CompareAndSwap(false, true) {
		return nil, nil
	}

	return []model.Schedule{s.schedule}, nil
}

type countingPublisher struct {
	mu   sync.Mutex
	msgs []queue.DispatchMessage
}

func (p *countingPublisher) Publish(msg queue.DispatchMessage, _ retry.Strategy) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *countingPublisher) published() []queue.DispatchMessage {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]queue.DispatchMessage(nil), p.msgs...)
}

func TestDispatcher_OverlappingTicks_SingleDispatch(t *testing.T) {
	due := model.Schedule{ID: uuid.New(), UserID: uuid.New(), NextDueAt: time.Now().Add(-time.Second)}
	store := &casClaimStore{schedule: due}
	publisher := &countingPublisher{}

	d := NewDispatcher(store, publisher, time.Minute, 100)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// Two ticks racing over the same due schedule: the claim settles the
	// winner, the loser sees nothing due.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.dispatchDue(context.Background(), strategy)
		}()
	}
	wg.Wait()

	got := publisher.published()
	assert.Len(t, got, 1)
	assert.Equal(t, due.ID, got[0].ScheduleID)
	assert.Equal(t, due.UserID, got[0].UserID)
}

func TestDispatcher_Run_TicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockscheduleService(ctrl)
	publisherMock := mocks.NewMockdispatchPublisher(ctrl)

	d := NewDispatcher(serviceMock, publisherMock, 10*time.Millisecond, 100)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().
		ClaimDue(gomock.Any(), strategy, gomock.Any(), 100).
		Return(nil, nil).
		MinTimes(1)

	go d.Run(ctx, strategy)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestDeliverer_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumerMock := mocks.NewMockdispatchConsumer(ctrl)
	handlerMock := mocks.NewMockmessageHandler(ctrl)

	d := NewDeliverer(consumerMock, handlerMock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	msg := queue.DispatchMessage{
		ScheduleID: uuid.New(),
		UserID:     uuid.New(),
		DueAt:      time.Now(),
	}

	consumerMock.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DispatchMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	handlerMock.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go d.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}
