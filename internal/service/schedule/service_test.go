package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/ccandelora/randomment/internal/mocks/service/schedule"
	"github.com/ccandelora/randomment/internal/model"
	schedulerepo "github.com/ccandelora/randomment/internal/repository/schedule"
)

func setupService(t *testing.T) (*Service, *mocks.MockscheduleRepository, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockscheduleRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	return NewService(repoMock, cacheMock), repoMock, cacheMock
}

func TestEnsureSchedule_CreatesWhenNonePending(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	userID := uuid.New()
	scheduleID := uuid.New()
	strategy := retry.Strategy{}
	minDelay := 30 * time.Second
	maxDelay := 2 * time.Minute
	before := time.Now()

	repoMock.EXPECT().GetPendingByUserID(gomock.Any(), userID).
		Return(model.Schedule{}, schedulerepo.ErrScheduleNotFound)

	repoMock.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s model.Schedule) (model.Schedule, error) {
			// Due time must fall inside [now+min, now+max].
			assert.False(t, s.NextDueAt.Before(before.Add(minDelay)))
			assert.False(t, s.NextDueAt.After(time.Now().Add(maxDelay)))
			assert.Equal(t, userID, s.UserID)

			s.ID = scheduleID
			return s, nil
		},
	)

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, scheduleID.String(), model.StatusPending).Return(nil)

	sched, err := svc.EnsureSchedule(context.Background(), strategy, userID, minDelay, maxDelay)
	require.NoError(t, err)
	assert.Equal(t, scheduleID, sched.ID)
}

func TestEnsureSchedule_RefreshesExistingPending(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	userID := uuid.New()
	scheduleID := uuid.New()
	strategy := retry.Strategy{}

	repoMock.EXPECT().GetPendingByUserID(gomock.Any(), userID).
		Return(model.Schedule{ID: scheduleID, UserID: userID, Status: model.StatusPending}, nil)

	repoMock.EXPECT().
		RefreshPending(gomock.Any(), userID, gomock.Any(), 30*time.Second, 2*time.Minute).
		Return(model.Schedule{ID: scheduleID, UserID: userID, Status: model.StatusPending}, nil)

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, scheduleID.String(), model.StatusPending).Return(nil)

	sched, err := svc.EnsureSchedule(context.Background(), strategy, userID, 30*time.Second, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, scheduleID, sched.ID)
}

func TestEnsureSchedule_FallsBackWhenInsertLosesRace(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	userID := uuid.New()
	scheduleID := uuid.New()
	strategy := retry.Strategy{}

	repoMock.EXPECT().GetPendingByUserID(gomock.Any(), userID).
		Return(model.Schedule{}, schedulerepo.ErrScheduleNotFound)

	// A concurrent writer inserted between the check and our insert; the
	// unique constraint rejects us and the update path takes over.
	repoMock.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).
		Return(model.Schedule{}, schedulerepo.ErrDuplicatePending)

	repoMock.EXPECT().
		RefreshPending(gomock.Any(), userID, gomock.Any(), 30*time.Second, 2*time.Minute).
		Return(model.Schedule{ID: scheduleID, UserID: userID, Status: model.StatusPending}, nil)

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, scheduleID.String(), model.StatusPending).Return(nil)

	sched, err := svc.EnsureSchedule(context.Background(), strategy, userID, 30*time.Second, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, scheduleID, sched.ID)
}

func TestEnsureSchedule_InvalidWindow(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.EnsureSchedule(context.Background(), retry.Strategy{}, uuid.New(), 2*time.Minute, 30*time.Second)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.EnsureSchedule(context.Background(), retry.Strategy{}, uuid.New(), 0, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestCancelPending_BestEffort(t *testing.T) {
	svc, repoMock, _ := setupService(t)

	userID := uuid.New()

	// Nothing pending, e.g. the dispatcher already claimed the schedule.
	repoMock.EXPECT().CancelPending(gomock.Any(), userID).
		Return(uuid.Nil, schedulerepo.ErrScheduleNotFound)

	err := svc.CancelPending(context.Background(), retry.Strategy{}, userID)
	assert.NoError(t, err)
}

func TestCancelPending_Success(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	userID := uuid.New()
	scheduleID := uuid.New()
	strategy := retry.Strategy{}

	repoMock.EXPECT().CancelPending(gomock.Any(), userID).Return(scheduleID, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, scheduleID.String(), model.StatusCancelled).Return(nil)

	err := svc.CancelPending(context.Background(), strategy, userID)
	assert.NoError(t, err)
}

func TestClaimDue(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	now := time.Now()
	strategy := retry.Strategy{}
	s1 := model.Schedule{ID: uuid.New(), UserID: uuid.New(), Status: model.StatusSent}
	s2 := model.Schedule{ID: uuid.New(), UserID: uuid.New(), Status: model.StatusSent}

	repoMock.EXPECT().ClaimDue(gomock.Any(), now, 100).Return([]model.Schedule{s1, s2}, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, s1.ID.String(), model.StatusSent).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, s2.ID.String(), model.StatusSent).Return(nil)

	claimed, err := svc.ClaimDue(context.Background(), strategy, now, 100)
	require.NoError(t, err)
	assert.Len(t, claimed, 2)
}

func TestGetScheduleStatusByID_CacheHit(t *testing.T) {
	svc, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return(model.StatusPending, nil)

	status, err := svc.GetScheduleStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, status)
}

func TestGetScheduleStatusByID_CacheMiss(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetScheduleStatusByID(gomock.Any(), id).Return(model.StatusSent, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusSent).Return(nil)

	status, err := svc.GetScheduleStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestGetScheduleStatusByID_NotFound(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetScheduleStatusByID(gomock.Any(), id).Return("", schedulerepo.ErrScheduleNotFound)

	_, err := svc.GetScheduleStatusByID(context.Background(), strategy, id)
	assert.True(t, errors.Is(err, schedulerepo.ErrScheduleNotFound))
}

func TestDueTime_Bounds(t *testing.T) {
	now := time.Now()
	minDelay := 30 * time.Second
	maxDelay := 2 * time.Minute

	for i := 0; i < 1000; i++ {
		due := dueTime(now, minDelay, maxDelay)
		assert.False(t, due.Before(now.Add(minDelay)), "due time before window start")
		assert.False(t, due.After(now.Add(maxDelay)), "due time past window end")
	}

	// Degenerate window: min == max pins the due time exactly.
	due := dueTime(now, time.Minute, time.Minute)
	assert.Equal(t, now.Add(time.Minute), due)
}
