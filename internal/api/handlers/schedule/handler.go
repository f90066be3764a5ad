package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/api/respond"
	"github.com/ccandelora/randomment/internal/config"
	"github.com/ccandelora/randomment/internal/model"
	schedulerepo "github.com/ccandelora/randomment/internal/repository/schedule"
	schedulesvc "github.com/ccandelora/randomment/internal/service/schedule"
)

// scheduleService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/schedule/mock.go -package=mocks
type scheduleService interface {
	EnsureSchedule(ctx context.Context, strategy retry.Strategy, userID uuid.UUID, minDelay, maxDelay time.Duration) (model.Schedule, error)
	CancelPending(ctx context.Context, strategy retry.Strategy, userID uuid.UUID) error
	GetScheduleStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	GetSchedulesByUserID(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error)
}

// Handler handles HTTP requests related to moment-window schedules.
type Handler struct {
	service   scheduleService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s scheduleService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// EnsureRequest represents the JSON body of a schedule request. Delays are
// Go duration strings, e.g. "30s" or "2m".
type EnsureRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	MinDelay string `json:"min_delay" validate:"required"`
	MaxDelay string `json:"max_delay" validate:"required"`
}

// Ensure handles HTTP POST requests to create or refresh the caller's
// pending schedule.
func (h *Handler) Ensure(c *ginext.Context) {
	var req EnsureRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user_id"))
		return
	}

	minDelay, err := time.ParseDuration(req.MinDelay)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid min_delay"))
		return
	}

	maxDelay, err := time.ParseDuration(req.MaxDelay)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid max_delay"))
		return
	}

	sched, err := h.service.EnsureSchedule(c.Request.Context(), h.cfg.Retry, userID, minDelay, maxDelay)
	if err != nil {
		if errors.Is(err, schedulesvc.ErrInvalidWindow) {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid delay window"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg("failed to ensure schedule")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, sched)
}

// Cancel handles HTTP DELETE requests to cancel the user's pending
// schedule. Cancellation is best effort; no pending schedule is success.
func (h *Handler) Cancel(c *ginext.Context) {
	idStr := c.Param("user_id")
	userID, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse user_id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user_id"))
		return
	}

	if err := h.service.CancelPending(c.Request.Context(), h.cfg.Retry, userID); err != nil {
		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg("failed to cancel pending schedule")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "pending schedule cancelled")
}

// GetStatus handles HTTP GET requests to retrieve the status of a schedule.
func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetScheduleStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, schedulerepo.ErrScheduleNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("schedule not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("schedule not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get schedule status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// ListByUser handles HTTP GET requests to retrieve a user's scheduling
// history.
func (h *Handler) ListByUser(c *ginext.Context) {
	idStr := c.Param("user_id")
	userID, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse user_id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user_id"))
		return
	}

	schedules, err := h.service.GetSchedulesByUserID(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg("failed to get schedules")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, schedules)
}
