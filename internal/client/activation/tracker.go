// Package activation observes the client's foreground/background
// lifecycle and requests a moment-window schedule on each activation edge.
package activation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/model"
)

type scheduleClient interface {
	EnsureSchedule(ctx context.Context, userID uuid.UUID, minDelay, maxDelay time.Duration) (model.Schedule, error)
	CancelPending(ctx context.Context, userID uuid.UUID) error
}

type session interface {
	CurrentUserID() (uuid.UUID, bool)
}

// Tracker requests a schedule on every background→foreground transition.
// An in-flight guard drops a second activation edge while the request
// from the first is still outstanding, so rapid-fire lifecycle events
// from the host runtime produce a single write.
type Tracker struct {
	client  scheduleClient
	session session

	minDelay time.Duration
	maxDelay time.Duration

	// cancelOnExit requests a best-effort cancellation of the pending
	// schedule when the app backgrounds. Policy choice, off by default.
	cancelOnExit bool

	inFlight atomic.Bool
}

// NewTracker creates an activation tracker with the given delay window.
func NewTracker(client scheduleClient, session session, minDelay, maxDelay time.Duration) *Tracker {
	return &Tracker{
		client:   client,
		session:  session,
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// CancelOnExit enables best-effort schedule cancellation on background.
func (t *Tracker) CancelOnExit() *Tracker {
	t.cancelOnExit = true
	return t
}

// HandleForeground processes an activation edge. Scheduling errors are
// logged and swallowed; a missed nudge is not fatal to the host app.
func (t *Tracker) HandleForeground(ctx context.Context) {
	userID, ok := t.session.CurrentUserID()
	if !ok {
		return
	}

	if !t.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer t.inFlight.Store(false)

	if _, err := t.client.EnsureSchedule(ctx, userID, t.minDelay, t.maxDelay); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to request moment schedule")
	}
}

// HandleBackground processes a deactivation edge.
func (t *Tracker) HandleBackground(ctx context.Context) {
	if !t.cancelOnExit {
		return
	}

	userID, ok := t.session.CurrentUserID()
	if !ok {
		return
	}

	if err := t.client.CancelPending(ctx, userID); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to cancel pending schedule")
	}
}
