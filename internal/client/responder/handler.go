// Package responder reacts to notification taps on the client: it either
// navigates to the capture surface immediately or defers the navigation
// until the session becomes authenticated and onboarded.
package responder

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/client/intent"
	"github.com/ccandelora/randomment/pkg/push"
)

// SurfaceCapture is the navigation target opened by a moment-window tap.
const SurfaceCapture = "capture"

// DefaultIntentExpiry bounds how long a deferred tap stays replayable.
const DefaultIntentExpiry = time.Hour

// SessionState describes the client session at a point in time.
type SessionState struct {
	Authenticated bool
	Onboarded     bool
}

// Ready reports whether the session can act on a navigation request.
func (s SessionState) Ready() bool {
	return s.Authenticated && s.Onboarded
}

type sessionWatcher interface {
	Current() SessionState
	Changes() <-chan SessionState
}

type navigator interface {
	IsReady() bool
	NavigateTo(surface string)
}

type intentStore interface {
	Put(in intent.Intent) error
	Take() (intent.Intent, bool, error)
}

var errNavigationNotReady = errors.New("navigation host not ready")

// Handler is the notification response handler.
type Handler struct {
	session sessionWatcher
	nav     navigator
	intents intentStore

	expiry   time.Duration
	navRetry retry.Strategy
}

// NewHandler creates a notification response handler. navRetry bounds the
// navigate-when-ready polling on cold start; once its attempts are
// exhausted the navigation is silently dropped.
func NewHandler(session sessionWatcher, nav navigator, intents intentStore, expiry time.Duration, navRetry retry.Strategy) *Handler {
	return &Handler{
		session:  session,
		nav:      nav,
		intents:  intents,
		expiry:   expiry,
		navRetry: navRetry,
	}
}

// HandleTap processes a notification tap carrying the given payload.
// Unknown payload types are ignored.
func (h *Handler) HandleTap(ctx context.Context, p push.Payload) {
	if p.Type != push.TypeMomentWindow {
		return
	}

	if h.session.Current().Ready() {
		h.navigateWhenReady(ctx)
		return
	}

	in := intent.Intent{Type: p.Type, StoredAt: time.Now()}
	if err := h.intents.Put(in); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to store pending intent")
	}
}

// Run watches session changes and replays the pending intent when the
// session becomes ready. It blocks until the context is cancelled.
func (h *Handler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-h.session.Changes():
			if !ok {
				return
			}

			if !state.Ready() {
				continue
			}

			h.replayPending(ctx)
		}
	}
}

// replayPending takes the stored intent, which clears it unconditionally,
// and navigates only if the intent is still within the expiry window.
func (h *Handler) replayPending(ctx context.Context) {
	in, ok, err := h.intents.Take()
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to read pending intent")
		return
	}

	if !ok || in.Type != push.TypeMomentWindow {
		return
	}

	if time.Since(in.StoredAt) > h.expiry {
		zlog.Logger.Info().Msg("pending intent expired, discarding")
		return
	}

	h.navigateWhenReady(ctx)
}

// navigateWhenReady polls the navigation host until it is mounted, then
// navigates exactly once. Giving up after the retry budget is silent:
// losing a navigation is not data loss.
func (h *Handler) navigateWhenReady(ctx context.Context) {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !h.nav.IsReady() {
			return errNavigationNotReady
		}

		h.nav.NavigateTo(SurfaceCapture)
		return nil
	}, h.navRetry)

	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("giving up on capture navigation")
	}
}
