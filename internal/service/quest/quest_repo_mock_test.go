package quest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

var _ questRepo = &questRepoMock{}

type questRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (domain.Quest, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Quest, error)
	ListFunc             func(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error)
	CreateFunc           func(ctx context.Context, params domain.QuestCreateParams) (domain.Quest, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.QuestUpdateParams) (domain.Quest, error)
	ExpireDueFunc        func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByIDForUpdate []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.QuestFilter
		}
		Create []struct {
			Params domain.QuestCreateParams
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.QuestUpdateParams
		}
		ExpireDue []struct {
			Now time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockExpireDue        sync.RWMutex
}

func (mock *questRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Quest, error) {
	if mock.GetByIDFunc == nil {
		panic("questRepoMock.GetByIDFunc: method is nil but questRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *questRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *questRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Quest, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("questRepoMock.GetByIDForUpdateFunc: method is nil but questRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *questRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *questRepoMock) List(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error) {
	if mock.ListFunc == nil {
		panic("questRepoMock.ListFunc: method is nil but questRepo.List was just called")
	}
	callInfo := struct{ Filter domain.QuestFilter }{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *questRepoMock) ListCalls() []struct{ Filter domain.QuestFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *questRepoMock) Create(ctx context.Context, params domain.QuestCreateParams) (domain.Quest, error) {
	if mock.CreateFunc == nil {
		panic("questRepoMock.CreateFunc: method is nil but questRepo.Create was just called")
	}
	callInfo := struct{ Params domain.QuestCreateParams }{Params: params}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, params)
}

func (mock *questRepoMock) CreateCalls() []struct{ Params domain.QuestCreateParams } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.QuestUpdateParams) (domain.Quest, error) {
	if mock.UpdateFunc == nil {
		panic("questRepoMock.UpdateFunc: method is nil but questRepo.Update was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Params domain.QuestUpdateParams
	}{ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *questRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.QuestUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *questRepoMock) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	if mock.ExpireDueFunc == nil {
		panic("questRepoMock.ExpireDueFunc: method is nil but questRepo.ExpireDue was just called")
	}
	callInfo := struct{ Now time.Time }{Now: now}
	mock.lockExpireDue.Lock()
	mock.calls.ExpireDue = append(mock.calls.ExpireDue, callInfo)
	mock.lockExpireDue.Unlock()
	return mock.ExpireDueFunc(ctx, now)
}

func (mock *questRepoMock) ExpireDueCalls() []struct{ Now time.Time } {
	mock.lockExpireDue.RLock()
	calls := mock.calls.ExpireDue
	mock.lockExpireDue.RUnlock()
	return calls
}
