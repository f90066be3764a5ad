package activation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ccandelora/randomment/internal/model"
)

type fakeScheduleClient struct {
	mu      sync.Mutex
	calls   int
	cancels int
	block   chan struct{}
	err     error
}

func (f *fakeScheduleClient) EnsureSchedule(
	_ context.Context, userID uuid.UUID, minDelay, maxDelay time.Duration,
) (model.Schedule, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}

	if f.err != nil {
		return model.Schedule{}, f.err
	}

	return model.Schedule{ID: uuid.New(), UserID: userID, MinDelay: minDelay, MaxDelay: maxDelay}, nil
}

func (f *fakeScheduleClient) CancelPending(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	f.cancels++
	f.mu.Unlock()
	return nil
}

func (f *fakeScheduleClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeSession struct {
	userID   uuid.UUID
	loggedIn bool
}

func (f *fakeSession) CurrentUserID() (uuid.UUID, bool) {
	return f.userID, f.loggedIn
}

func TestHandleForeground_RequestsSchedule(t *testing.T) {
	client := &fakeScheduleClient{}
	session := &fakeSession{userID: uuid.New(), loggedIn: true}

	tracker := NewTracker(client, session, 30*time.Second, 2*time.Minute)
	tracker.HandleForeground(context.Background())

	assert.Equal(t, 1, client.callCount())
}

func TestHandleForeground_SkipsWhenLoggedOut(t *testing.T) {
	client := &fakeScheduleClient{}
	session := &fakeSession{loggedIn: false}

	tracker := NewTracker(client, session, 30*time.Second, 2*time.Minute)
	tracker.HandleForeground(context.Background())

	assert.Equal(t, 0, client.callCount())
}

func TestHandleForeground_InFlightGuardDropsSecondEdge(t *testing.T) {
	client := &fakeScheduleClient{block: make(chan struct{})}
	session := &fakeSession{userID: uuid.New(), loggedIn: true}

	tracker := NewTracker(client, session, 30*time.Second, 2*time.Minute)

	done := make(chan struct{})
	go func() {
		tracker.HandleForeground(context.Background())
		close(done)
	}()

	// Wait for the first activation to be in flight, then fire a second
	// edge; it must be dropped, not queued.
	assert.Eventually(t, func() bool { return client.callCount() == 1 }, time.Second, time.Millisecond)

	tracker.HandleForeground(context.Background())
	assert.Equal(t, 1, client.callCount())

	close(client.block)
	<-done

	// After the first request finishes the guard is released again.
	tracker.HandleForeground(context.Background())
	assert.Equal(t, 2, client.callCount())
}

func TestHandleForeground_ErrorSwallowed(t *testing.T) {
	client := &fakeScheduleClient{err: errors.New("store unavailable")}
	session := &fakeSession{userID: uuid.New(), loggedIn: true}

	tracker := NewTracker(client, session, 30*time.Second, 2*time.Minute)

	// Must not panic or surface anything; a missed nudge degrades silently.
	tracker.HandleForeground(context.Background())
	assert.Equal(t, 1, client.callCount())
}

func TestHandleBackground_CancelOnExit(t *testing.T) {
	client := &fakeScheduleClient{}
	session := &fakeSession{userID: uuid.New(), loggedIn: true}

	tracker := NewTracker(client, session, 30*time.Second, 2*time.Minute)
	tracker.HandleBackground(context.Background())
	assert.Equal(t, 0, client.cancels)

	tracker.CancelOnExit()
	tracker.HandleBackground(context.Background())
	assert.Equal(t, 1, client.cancels)
}
