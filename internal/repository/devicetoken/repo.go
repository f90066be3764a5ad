package devicetoken

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ccandelora/randomment/internal/model"
)

var (
	ErrTokenNotFound  = errors.New("device token not found")
	ErrNoActiveTokens = errors.New("no active device tokens")
)

// Repository provides methods to interact with the device_tokens table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new device token repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// UpsertToken registers a delivery token for (user, platform). On conflict
// the existing row is refreshed and reactivated.
func (r *Repository) UpsertToken(ctx context.Context, t model.DeviceToken) (uuid.UUID, error) {
	query := `
		INSERT INTO device_tokens (user_id, platform, token, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (user_id, platform)
		DO UPDATE SET token = EXCLUDED.token, is_active = TRUE, updated_at = now()
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(ctx, query, t.UserID, t.Platform, t.Token).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert device token: %w", err)
	}

	return id, nil
}

// Deactivate marks the user's token for the given platform as inactive.
// Rows are never deleted.
func (r *Repository) Deactivate(ctx context.Context, userID uuid.UUID, platform string) error {
	query := `
		UPDATE device_tokens
		SET is_active = FALSE, updated_at = now()
		WHERE user_id = $1 AND platform = $2;
    `

	res, err := r.db.ExecContext(ctx, query, userID, platform)
	if err != nil {
		return fmt.Errorf("failed to deactivate device token: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// DeactivateByToken marks a token inactive wherever it appears. Used when
// the notification gateway reports the token as permanently invalid.
func (r *Repository) DeactivateByToken(ctx context.Context, token string) error {
	query := `
		UPDATE device_tokens
		SET is_active = FALSE, updated_at = now()
		WHERE token = $1;
    `

	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to deactivate device token: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// GetActiveByUserID returns the user's active delivery tokens.
func (r *Repository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]model.DeviceToken, error) {
	query := `
		SELECT id, user_id, platform, token, is_active, created_at, updated_at
		FROM device_tokens
		WHERE user_id = $1 AND is_active;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.DeviceToken
	for rows.Next() {
		var t model.DeviceToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Platform, &t.Token, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, ErrNoActiveTokens
	}

	return tokens, nil
}
