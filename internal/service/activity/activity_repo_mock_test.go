package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.ActivityRecord, error)

	calls struct {
		ListByUser []struct {
			UserID uuid.UUID
			Filter domain.ActivityFilter
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *activityRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.ActivityRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("activityRepoMock.ListByUserFunc: method is nil but activityRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.ActivityFilter
	}{UserID: userID, Filter: filter}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, filter)
}

func (mock *activityRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Filter domain.ActivityFilter
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
