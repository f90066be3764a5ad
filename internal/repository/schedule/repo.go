package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ccandelora/randomment/internal/model"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrDuplicatePending signals that a concurrent writer already holds the
	// single pending slot for this user. It is an expected branch of the
	// race-safe upsert, not a failure.
	ErrDuplicatePending = errors.New("pending schedule already exists")
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits
// the schedules_user_pending_key partial unique index.
const uniqueViolation = "23505"

// Repository provides methods to interact with the schedules table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new schedule repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateSchedule inserts a new pending schedule for the user. If another
// pending schedule already exists, it returns ErrDuplicatePending so the
// caller can fall back to RefreshPending.
func (r *Repository) CreateSchedule(ctx context.Context, s model.Schedule) (model.Schedule, error) {
	query := `
		INSERT INTO schedules (
		    user_id, next_due_at, min_delay_ms, max_delay_ms, status
		) VALUES ($1, $2, $3, $4, 'pending')
		RETURNING id, created_at, updated_at;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, s.UserID, s.NextDueAt, s.MinDelay.Milliseconds(), s.MaxDelay.Milliseconds(),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.Schedule{}, ErrDuplicatePending
		}

		return model.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.Status = model.StatusPending

	return s, nil
}

// RefreshPending overwrites the due time and delay bounds of the user's
// pending schedule. Returns ErrScheduleNotFound if no pending row exists.
func (r *Repository) RefreshPending(
	ctx context.Context, userID uuid.UUID, nextDueAt time.Time, minDelay, maxDelay time.Duration,
) (model.Schedule, error) {
	query := `
		UPDATE schedules
		SET next_due_at = $2, min_delay_ms = $3, max_delay_ms = $4, updated_at = now()
		WHERE user_id = $1 AND status = 'pending'
		RETURNING id, created_at, updated_at;
    `

	s := model.Schedule{
		UserID:    userID,
		NextDueAt: nextDueAt,
		MinDelay:  minDelay,
		MaxDelay:  maxDelay,
		Status:    model.StatusPending,
	}

	err := r.db.Master.QueryRowContext(
		ctx, query, userID, nextDueAt, minDelay.Milliseconds(), maxDelay.Milliseconds(),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Schedule{}, ErrScheduleNotFound
		}

		return model.Schedule{}, fmt.Errorf("failed to refresh pending schedule: %w", err)
	}

	return s, nil
}

// GetPendingByUserID returns the user's pending schedule if any. This read
// is an optimization for the upsert's fast path only; the partial unique
// index is what actually enforces the single-pending invariant.
func (r *Repository) GetPendingByUserID(ctx context.Context, userID uuid.UUID) (model.Schedule, error) {
	query := `
		SELECT id, user_id, next_due_at, min_delay_ms, max_delay_ms, status, sent_at, created_at, updated_at
		FROM schedules
		WHERE user_id = $1 AND status = 'pending';
    `

	s, err := scanSchedule(r.db.Master.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Schedule{}, ErrScheduleNotFound
		}

		return model.Schedule{}, fmt.Errorf("failed to get pending schedule: %w", err)
	}

	return s, nil
}

// ClaimDue atomically transitions up to limit due pending schedules to
// "sent" and returns the claimed rows. The conditional status check makes
// the claim safe against overlapping dispatcher ticks: only one tick's
// update wins for a given row.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]model.Schedule, error) {
	query := `
		UPDATE schedules
		SET status = 'sent', sent_at = $1, updated_at = $1
		WHERE id IN (
		    SELECT id FROM schedules
		    WHERE status = 'pending' AND next_due_at <= $1
		    ORDER BY next_due_at
		    LIMIT $2
		) AND status = 'pending'
		RETURNING id, user_id, next_due_at, min_delay_ms, max_delay_ms, status, sent_at, created_at, updated_at;
    `

	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due schedules: %w", err)
	}
	defer rows.Close()

	var claimed []model.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}

		claimed = append(claimed, s)
	}

	return claimed, rows.Err()
}

// CancelPending transitions the user's pending schedule to "cancelled" and
// returns its ID. A schedule already claimed by the dispatcher is not
// affected; in that case ErrScheduleNotFound is returned.
func (r *Repository) CancelPending(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	query := `
		UPDATE schedules
		SET status = 'cancelled', updated_at = now()
		WHERE user_id = $1 AND status = 'pending'
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrScheduleNotFound
		}

		return uuid.Nil, fmt.Errorf("failed to cancel pending schedule: %w", err)
	}

	return id, nil
}

// GetScheduleStatusByID retrieves the status of a schedule by its ID.
func (r *Repository) GetScheduleStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM schedules
		WHERE id = $1;
    `

	var status string
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrScheduleNotFound
		}

		return "", fmt.Errorf("failed to get schedule status: %w", err)
	}

	return status, nil
}

// GetSchedulesByUserID retrieves the user's schedules ordered by creation
// time descending, most recent cycle first.
func (r *Repository) GetSchedulesByUserID(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error) {
	query := `
		SELECT id, user_id, next_due_at, min_delay_ms, max_delay_ms, status, sent_at, created_at, updated_at
		FROM schedules
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}

		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (model.Schedule, error) {
	var (
		s            model.Schedule
		minMs, maxMs int64
		sentAt       sql.NullTime
	)

	err := row.Scan(&s.ID, &s.UserID, &s.NextDueAt, &minMs, &maxMs, &s.Status, &sentAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return model.Schedule{}, err
	}

	s.MinDelay = time.Duration(minMs) * time.Millisecond
	s.MaxDelay = time.Duration(maxMs) * time.Millisecond
	if sentAt.Valid {
		s.SentAt = &sentAt.Time
	}

	return s, nil
}
