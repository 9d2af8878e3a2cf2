package quest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
)

var _ participationRepo = &participationRepoMock{}

type participationRepoMock struct {
	CreateFunc                     func(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error)
	GetForUpdateFunc               func(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error)
	ListByQuestFunc                func(ctx context.Context, questID uuid.UUID) ([]domain.Participation, error)
	CountVerifiedByParticipantFunc func(ctx context.Context, participantID uuid.UUID) (int, error)
	UpdateStatusFunc               func(ctx context.Context, questID, participantID uuid.UUID, status domain.ParticipationStatus, proof *string) (domain.Participation, error)

	calls struct {
		Create []struct {
			QuestID       uuid.UUID
			ParticipantID uuid.UUID
		}
		GetForUpdate []struct {
			QuestID       uuid.UUID
			ParticipantID uuid.UUID
		}
		ListByQuest []struct {
			QuestID uuid.UUID
		}
		CountVerifiedByParticipant []struct {
			ParticipantID uuid.UUID
		}
		UpdateStatus []struct {
			QuestID       uuid.UUID
			ParticipantID uuid.UUID
			Status        domain.ParticipationStatus
			Proof         *string
		}
	}
	lockCreate                     sync.RWMutex
	lockGetForUpdate               sync.RWMutex
	lockListByQuest                sync.RWMutex
	lockCountVerifiedByParticipant sync.RWMutex
	lockUpdateStatus               sync.RWMutex
}

func (mock *participationRepoMock) Create(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error) {
	if mock.CreateFunc == nil {
		panic("participationRepoMock.CreateFunc: method is nil but participationRepo.Create was just called")
	}
	callInfo := struct {
		QuestID       uuid.UUID
		ParticipantID uuid.UUID
	}{QuestID: questID, ParticipantID: participantID}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, questID, participantID)
}

func (mock *participationRepoMock) CreateCalls() []struct {
	QuestID       uuid.UUID
	ParticipantID uuid.UUID
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *participationRepoMock) GetForUpdate(ctx context.Context, questID, participantID uuid.UUID) (domain.Participation, error) {
	if mock.GetForUpdateFunc == nil {
		panic("participationRepoMock.GetForUpdateFunc: method is nil but participationRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		QuestID       uuid.UUID
		ParticipantID uuid.UUID
	}{QuestID: questID, ParticipantID: participantID}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, questID, participantID)
}

func (mock *participationRepoMock) GetForUpdateCalls() []struct {
	QuestID       uuid.UUID
	ParticipantID uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *participationRepoMock) ListByQuest(ctx context.Context, questID uuid.UUID) ([]domain.Participation, error) {
	if mock.ListByQuestFunc == nil {
		panic("participationRepoMock.ListByQuestFunc: method is nil but participationRepo.ListByQuest was just called")
	}
	callInfo := struct{ QuestID uuid.UUID }{QuestID: questID}
	mock.lockListByQuest.Lock()
	mock.calls.ListByQuest = append(mock.calls.ListByQuest, callInfo)
	mock.lockListByQuest.Unlock()
	return mock.ListByQuestFunc(ctx, questID)
}

func (mock *participationRepoMock) ListByQuestCalls() []struct{ QuestID uuid.UUID } {
	mock.lockListByQuest.RLock()
	calls := mock.calls.ListByQuest
	mock.lockListByQuest.RUnlock()
	return calls
}

func (mock *participationRepoMock) CountVerifiedByParticipant(ctx context.Context, participantID uuid.UUID) (int, error) {
	if mock.CountVerifiedByParticipantFunc == nil {
		panic("participationRepoMock.CountVerifiedByParticipantFunc: method is nil but participationRepo.CountVerifiedByParticipant was just called")
	}
	callInfo := struct{ ParticipantID uuid.UUID }{ParticipantID: participantID}
	mock.lockCountVerifiedByParticipant.Lock()
	mock.calls.CountVerifiedByParticipant = append(mock.calls.CountVerifiedByParticipant, callInfo)
	mock.lockCountVerifiedByParticipant.Unlock()
	return mock.CountVerifiedByParticipantFunc(ctx, participantID)
}

func (mock *participationRepoMock) CountVerifiedByParticipantCalls() []struct{ ParticipantID uuid.UUID } {
	mock.lockCountVerifiedByParticipant.RLock()
	calls := mock.calls.CountVerifiedByParticipant
	mock.lockCountVerifiedByParticipant.RUnlock()
	return calls
}

func (mock *participationRepoMock) UpdateStatus(ctx context.Context, questID, participantID uuid.UUID, status domain.ParticipationStatus, proof *string) (domain.Participation, error) {
	if mock.UpdateStatusFunc == nil {
		panic("participationRepoMock.UpdateStatusFunc: method is nil but participationRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		QuestID       uuid.UUID
		ParticipantID uuid.UUID
		Status        domain.ParticipationStatus
		Proof         *string
	}{QuestID: questID, ParticipantID: participantID, Status: status, Proof: proof}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, questID, participantID, status, proof)
}

func (mock *participationRepoMock) UpdateStatusCalls() []struct {
	QuestID       uuid.UUID
	ParticipantID uuid.UUID
	Status        domain.ParticipationStatus
	Proof         *string
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
