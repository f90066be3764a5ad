package schedule

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ccandelora/randomment/internal/model"
	schedulerepo "github.com/ccandelora/randomment/internal/repository/schedule"
)

// ErrInvalidWindow is returned when the requested delay window is malformed.
var ErrInvalidWindow = errors.New("invalid delay window")

//go:generate mockgen -source=service.go -destination=../../mocks/service/schedule/mock.go -package=mocks
type scheduleRepository interface {
	CreateSchedule(ctx context.Context, s model.Schedule) (model.Schedule, error)
	RefreshPending(ctx context.Context, userID uuid.UUID, nextDueAt time.Time, minDelay, maxDelay time.Duration) (model.Schedule, error)
	GetPendingByUserID(ctx context.Context, userID uuid.UUID) (model.Schedule, error)
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]model.Schedule, error)
	CancelPending(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	GetScheduleStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	GetSchedulesByUserID(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service implements the moment-window scheduling logic on top of the
// schedule repository, with a Redis cache for status lookups.
type Service struct {
	repo  scheduleRepository
	cache cache
}

// NewService creates a new schedule service.
func NewService(repo scheduleRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// EnsureSchedule creates or refreshes the user's single pending schedule
// with a due time drawn uniformly from [now+minDelay, now+maxDelay].
//
// The read-before-insert is only a fast path; when two writers race, the
// partial unique index rejects the losing insert and that writer falls
// back to refreshing the surviving row. Last write wins for the due time.
func (s *Service) EnsureSchedule(
	ctx context.Context, strategy retry.Strategy, userID uuid.UUID, minDelay, maxDelay time.Duration,
) (model.Schedule, error) {
	if minDelay <= 0 || maxDelay < minDelay {
		return model.Schedule{}, ErrInvalidWindow
	}

	nextDueAt := dueTime(time.Now(), minDelay, maxDelay)

	sched, err := s.repo.GetPendingByUserID(ctx, userID)
	if err == nil {
		sched, err = s.repo.RefreshPending(ctx, userID, nextDueAt, minDelay, maxDelay)
		if err != nil {
			return model.Schedule{}, fmt.Errorf("refresh schedule: %w", err)
		}

		s.cacheStatus(ctx, strategy, sched.ID, model.StatusPending)

		return sched, nil
	}

	if !errors.Is(err, schedulerepo.ErrScheduleNotFound) {
		return model.Schedule{}, fmt.Errorf("check pending schedule: %w", err)
	}

	sched, err = s.repo.CreateSchedule(ctx, model.Schedule{
		UserID:    userID,
		NextDueAt: nextDueAt,
		MinDelay:  minDelay,
		MaxDelay:  maxDelay,
		Status:    model.StatusPending,
	})
	if errors.Is(err, schedulerepo.ErrDuplicatePending) {
		// A concurrent writer won the insert race; overwrite its due time.
		sched, err = s.repo.RefreshPending(ctx, userID, nextDueAt, minDelay, maxDelay)
	}
	if err != nil {
		return model.Schedule{}, fmt.Errorf("create schedule: %w", err)
	}

	s.cacheStatus(ctx, strategy, sched.ID, model.StatusPending)

	return sched, nil
}

// CancelPending cancels the user's pending schedule if one exists. A
// schedule already claimed by the dispatcher is left alone; cancellation
// is best effort and losing that race is not an error.
func (s *Service) CancelPending(ctx context.Context, strategy retry.Strategy, userID uuid.UUID) error {
	id, err := s.repo.CancelPending(ctx, userID)
	if err != nil {
		if errors.Is(err, schedulerepo.ErrScheduleNotFound) {
			return nil
		}

		return fmt.Errorf("cancel pending schedule: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.StatusCancelled)

	return nil
}

// ClaimDue atomically claims all due pending schedules, up to limit.
func (s *Service) ClaimDue(ctx context.Context, strategy retry.Strategy, now time.Time, limit int) ([]model.Schedule, error) {
	claimed, err := s.repo.ClaimDue(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("claim due schedules: %w", err)
	}

	for _, sched := range claimed {
		s.cacheStatus(ctx, strategy, sched.ID, model.StatusSent)
	}

	return claimed, nil
}

// GetScheduleStatusByID returns the schedule's status, cache-first.
func (s *Service) GetScheduleStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Printf("failed to get schedule status from cache %s: %v", id, err)
	}

	if err != nil {
		status, err = s.repo.GetScheduleStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get schedule status: %w", err)
		}

		s.cacheStatus(ctx, strategy, id, status)
	}

	return status, nil
}

// GetSchedulesByUserID returns the user's scheduling history.
func (s *Service) GetSchedulesByUserID(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error) {
	schedules, err := s.repo.GetSchedulesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get schedules: %w", err)
	}

	return schedules, nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Printf("failed to cache schedule %s: %v", id, err)
	}
}

// dueTime draws a due time uniformly from [now+minDelay, now+maxDelay].
func dueTime(now time.Time, minDelay, maxDelay time.Duration) time.Time {
	return now.Add(minDelay + time.Duration(rand.Int63n(int64(maxDelay-minDelay+1))))
}
