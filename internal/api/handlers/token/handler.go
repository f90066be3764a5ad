package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/api/respond"
	"github.com/ccandelora/randomment/internal/repository/devicetoken"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/token/mock.go -package=mocks
type tokenService interface {
	RegisterToken(ctx context.Context, userID uuid.UUID, platform, token string) (uuid.UUID, error)
	Deactivate(ctx context.Context, userID uuid.UUID, platform string) error
}

// Handler handles HTTP requests related to device tokens.
type Handler struct {
	service   tokenService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s tokenService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// RegisterRequest represents the JSON body of a token registration.
type RegisterRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
	Token    string `json:"token" validate:"required"`
}

// Register handles HTTP POST requests to register a delivery token after
// the client is granted notification permission.
func (h *Handler) Register(c *ginext.Context) {
	var req RegisterRequest

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

	id, err := h.service.RegisterToken(c.Request.Context(), userID, req.Platform, req.Token)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg("failed to register token")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// DeactivateRequest represents the JSON body of a token deactivation.
type DeactivateRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// Deactivate handles HTTP DELETE requests to deactivate a device token.
func (h *Handler) Deactivate(c *ginext.Context) {
	var req DeactivateRequest

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

	if err := h.service.Deactivate(c.Request.Context(), userID, req.Platform); err != nil {
		if errors.Is(err, devicetoken.ErrTokenNotFound) {
			zlog.Logger.Warn().Interface("user_id", userID).Err(err).Msg("device token not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("device token not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg("failed to deactivate token")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "device token deactivated")
}
