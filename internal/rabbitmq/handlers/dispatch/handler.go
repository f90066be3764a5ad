package dispatch

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/model"
	"github.com/ccandelora/randomment/internal/rabbitmq/queue"
	"github.com/ccandelora/randomment/internal/repository/devicetoken"
	"github.com/ccandelora/randomment/pkg/push"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/dispatch/mock.go -package=mocks
type tokenService interface {
	ActiveTokens(ctx context.Context, userID uuid.UUID) ([]model.DeviceToken, error)
	DeactivateByToken(ctx context.Context, token string) error
}

type gateway interface {
	Send(ctx context.Context, token string, payload push.Payload) error
}

// Handler delivers one claimed schedule: it resolves the user's active
// tokens and pushes the moment-window payload to each of them.
type Handler struct {
	tokens  tokenService
	gateway gateway
}

func NewHandler(tokens tokenService, gw gateway) *Handler {
	return &Handler{
		tokens:  tokens,
		gateway: gw,
	}
}

// HandleMessage processes a dispatch message. Failures are isolated per
// token; the schedule stays "sent" no matter what happens here. A missed
// delivery is resolved by the next activation producing a fresh schedule,
// not by reverting the claim.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Dispatch: schedule %s for user %s due at %v", msg.ScheduleID, msg.UserID, msg.DueAt)

	tokens, err := h.tokens.ActiveTokens(ctx, msg.UserID)
	if err != nil {
		if errors.Is(err, devicetoken.ErrNoActiveTokens) {
			zlog.Logger.Info().Msgf("Dispatch: no active tokens for user %s, skipping", msg.UserID)
			return
		}

		zlog.Logger.Error().Err(err).Msgf("Dispatch: failed to resolve tokens for user %s", msg.UserID)
		return
	}

	payload := push.Payload{Type: push.TypeMomentWindow}

	for _, t := range tokens {
		var invalid bool

		err := retry.Do(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			sendErr := h.gateway.Send(ctx, t.Token, payload)
			if errors.Is(sendErr, push.ErrInvalidToken) {
				// Permanent failure, pointless to retry.
				invalid = true
				return nil
			}

			return sendErr
		}, strategy)

		if invalid {
			zlog.Logger.Warn().Msgf("Dispatch: token for user %s rejected by gateway, deactivating", t.UserID)
			if deactErr := h.tokens.DeactivateByToken(ctx, t.Token); deactErr != nil {
				zlog.Logger.Error().Err(deactErr).Msgf("Dispatch: failed to deactivate token for user %s", t.UserID)
			}
			continue
		}

		if err != nil {
			zlog.Logger.Error().Err(err).Msgf("Dispatch: failed to deliver to user %s on %s", t.UserID, t.Platform)
			continue
		}

		zlog.Logger.Info().Msgf("Dispatch: delivered schedule %s to user %s on %s", msg.ScheduleID, t.UserID, t.Platform)
	}
}
