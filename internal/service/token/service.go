package token

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ccandelora/randomment/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/token/mock.go -package=mocks
type tokenRepository interface {
	UpsertToken(ctx context.Context, t model.DeviceToken) (uuid.UUID, error)
	Deactivate(ctx context.Context, userID uuid.UUID, platform string) error
	DeactivateByToken(ctx context.Context, token string) error
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]model.DeviceToken, error)
}

// Service manages the device token registry.
type Service struct {
	repo tokenRepository
}

// NewService creates a new token service.
func NewService(repo tokenRepository) *Service {
	return &Service{repo: repo}
}

// RegisterToken records a delivery token for (user, platform), refreshing
// and reactivating any existing registration.
func (s *Service) RegisterToken(ctx context.Context, userID uuid.UUID, platform, token string) (uuid.UUID, error) {
	id, err := s.repo.UpsertToken(ctx, model.DeviceToken{
		UserID:   userID,
		Platform: platform,
		Token:    token,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("register token: %w", err)
	}

	return id, nil
}

// Deactivate marks the user's token for the platform as inactive.
func (s *Service) Deactivate(ctx context.Context, userID uuid.UUID, platform string) error {
	if err := s.repo.Deactivate(ctx, userID, platform); err != nil {
		return fmt.Errorf("deactivate token: %w", err)
	}

	return nil
}

// DeactivateByToken marks a gateway-rejected token inactive.
func (s *Service) DeactivateByToken(ctx context.Context, token string) error {
	if err := s.repo.DeactivateByToken(ctx, token); err != nil {
		return fmt.Errorf("deactivate token: %w", err)
	}

	return nil
}

// ActiveTokens returns the user's active delivery tokens.
func (s *Service) ActiveTokens(ctx context.Context, userID uuid.UUID) ([]model.DeviceToken, error) {
	tokens, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return tokens, nil
}
