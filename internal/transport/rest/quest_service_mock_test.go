package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/internal/service/quest"
)

var _ questService = &questServiceMock{}

type questServiceMock struct {
	CreateQuestFunc      func(ctx context.Context, input quest.CreateQuestInput) (domain.Quest, error)
	UpdateQuestFunc      func(ctx context.Context, input quest.UpdateQuestInput) (domain.Quest, error)
	GetQuestFunc         func(ctx context.Context, questID uuid.UUID) (domain.Quest, error)
	ListQuestsFunc       func(ctx context.Context, input quest.ListQuestsInput) ([]domain.Quest, error)
	JoinQuestFunc        func(ctx context.Context, input quest.JoinQuestInput) (domain.Participation, error)
	SubmitProofFunc      func(ctx context.Context, input quest.SubmitProofInput) (domain.Participation, error)
	VerifyQuestFunc      func(ctx context.Context, input quest.VerifyQuestInput) (domain.Participation, error)
	ListParticipantsFunc func(ctx context.Context, input quest.ListParticipantsInput) ([]domain.Participation, error)

	calls struct {
		CreateQuest []struct {
			Ctx   context.Context
			Input quest.CreateQuestInput
		}
		UpdateQuest []struct {
			Ctx   context.Context
			Input quest.UpdateQuestInput
		}
		GetQuest []struct {
			Ctx     context.Context
			QuestID uuid.UUID
		}
		ListQuests []struct {
			Ctx   context.Context
			Input quest.ListQuestsInput
		}
		JoinQuest []struct {
			Ctx   context.Context
			Input quest.JoinQuestInput
		}
		SubmitProof []struct {
			Ctx   context.Context
			Input quest.SubmitProofInput
		}
		VerifyQuest []struct {
			Ctx   context.Context
			Input quest.VerifyQuestInput
		}
		ListParticipants []struct {
			Ctx   context.Context
			Input quest.ListParticipantsInput
		}
	}
	lockCreateQuest      sync.RWMutex
	lockUpdateQuest      sync.RWMutex
	lockGetQuest         sync.RWMutex
	lockListQuests       sync.RWMutex
	lockJoinQuest        sync.RWMutex
	lockSubmitProof      sync.RWMutex
	lockVerifyQuest      sync.RWMutex
	lockListParticipants sync.RWMutex
}

func (mock *questServiceMock) CreateQuest(ctx context.Context, input quest.CreateQuestInput) (domain.Quest, error) {
	if mock.CreateQuestFunc == nil {
		panic("questServiceMock.CreateQuestFunc: method is nil but questService.CreateQuest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.CreateQuestInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateQuest.Lock()
	mock.calls.CreateQuest = append(mock.calls.CreateQuest, callInfo)
	mock.lockCreateQuest.Unlock()
	return mock.CreateQuestFunc(ctx, input)
}

func (mock *questServiceMock) CreateQuestCalls() []struct {
	Ctx   context.Context
	Input quest.CreateQuestInput
} {
	mock.lockCreateQuest.RLock()
	calls := mock.calls.CreateQuest
	mock.lockCreateQuest.RUnlock()
	return calls
}

func (mock *questServiceMock) UpdateQuest(ctx context.Context, input quest.UpdateQuestInput) (domain.Quest, error) {
	if mock.UpdateQuestFunc == nil {
		panic("questServiceMock.UpdateQuestFunc: method is nil but questService.UpdateQuest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.UpdateQuestInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateQuest.Lock()
	mock.calls.UpdateQuest = append(mock.calls.UpdateQuest, callInfo)
	mock.lockUpdateQuest.Unlock()
	return mock.UpdateQuestFunc(ctx, input)
}

func (mock *questServiceMock) UpdateQuestCalls() []struct {
	Ctx   context.Context
	Input quest.UpdateQuestInput
} {
	mock.lockUpdateQuest.RLock()
	calls := mock.calls.UpdateQuest
	mock.lockUpdateQuest.RUnlock()
	return calls
}

func (mock *questServiceMock) GetQuest(ctx context.Context, questID uuid.UUID) (domain.Quest, error) {
	if mock.GetQuestFunc == nil {
		panic("questServiceMock.GetQuestFunc: method is nil but questService.GetQuest was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		QuestID uuid.UUID
	}{Ctx: ctx, QuestID: questID}
	mock.lockGetQuest.Lock()
	mock.calls.GetQuest = append(mock.calls.GetQuest, callInfo)
	mock.lockGetQuest.Unlock()
	return mock.GetQuestFunc(ctx, questID)
}

func (mock *questServiceMock) GetQuestCalls() []struct {
	Ctx     context.Context
	QuestID uuid.UUID
} {
	mock.lockGetQuest.RLock()
	calls := mock.calls.GetQuest
	mock.lockGetQuest.RUnlock()
	return calls
}

func (mock *questServiceMock) ListQuests(ctx context.Context, input quest.ListQuestsInput) ([]domain.Quest, error) {
	if mock.ListQuestsFunc == nil {
		panic("questServiceMock.ListQuestsFunc: method is nil but questService.ListQuests was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.ListQuestsInput
	}{Ctx: ctx, Input: input}
	mock.lockListQuests.Lock()
	mock.calls.ListQuests = append(mock.calls.ListQuests, callInfo)
	mock.lockListQuests.Unlock()
	return mock.ListQuestsFunc(ctx, input)
}

func (mock *questServiceMock) ListQuestsCalls() []struct {
	Ctx   context.Context
	Input quest.ListQuestsInput
} {
	mock.lockListQuests.RLock()
	calls := mock.calls.ListQuests
	mock.lockListQuests.RUnlock()
	return calls
}

func (mock *questServiceMock) JoinQuest(ctx context.Context, input quest.JoinQuestInput) (domain.Participation, error) {
	if mock.JoinQuestFunc == nil {
		panic("questServiceMock.JoinQuestFunc: method is nil but questService.JoinQuest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.JoinQuestInput
	}{Ctx: ctx, Input: input}
	mock.lockJoinQuest.Lock()
	mock.calls.JoinQuest = append(mock.calls.JoinQuest, callInfo)
	mock.lockJoinQuest.Unlock()
	return mock.JoinQuestFunc(ctx, input)
}

func (mock *questServiceMock) JoinQuestCalls() []struct {
	Ctx   context.Context
	Input quest.JoinQuestInput
} {
	mock.lockJoinQuest.RLock()
	calls := mock.calls.JoinQuest
	mock.lockJoinQuest.RUnlock()
	return calls
}

func (mock *questServiceMock) SubmitProof(ctx context.Context, input quest.SubmitProofInput) (domain.Participation, error) {
	if mock.SubmitProofFunc == nil {
		panic("questServiceMock.SubmitProofFunc: method is nil but questService.SubmitProof was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.SubmitProofInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitProof.Lock()
	mock.calls.SubmitProof = append(mock.calls.SubmitProof, callInfo)
	mock.lockSubmitProof.Unlock()
	return mock.SubmitProofFunc(ctx, input)
}

func (mock *questServiceMock) SubmitProofCalls() []struct {
	Ctx   context.Context
	Input quest.SubmitProofInput
} {
	mock.lockSubmitProof.RLock()
	calls := mock.calls.SubmitProof
	mock.lockSubmitProof.RUnlock()
	return calls
}

func (mock *questServiceMock) VerifyQuest(ctx context.Context, input quest.VerifyQuestInput) (domain.Participation, error) {
	if mock.VerifyQuestFunc == nil {
		panic("questServiceMock.VerifyQuestFunc: method is nil but questService.VerifyQuest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.VerifyQuestInput
	}{Ctx: ctx, Input: input}
	mock.lockVerifyQuest.Lock()
	mock.calls.VerifyQuest = append(mock.calls.VerifyQuest, callInfo)
	mock.lockVerifyQuest.Unlock()
	return mock.VerifyQuestFunc(ctx, input)
}

func (mock *questServiceMock) VerifyQuestCalls() []struct {
	Ctx   context.Context
	Input quest.VerifyQuestInput
} {
	mock.lockVerifyQuest.RLock()
	calls := mock.calls.VerifyQuest
	mock.lockVerifyQuest.RUnlock()
	return calls
}

func (mock *questServiceMock) ListParticipants(ctx context.Context, input quest.ListParticipantsInput) ([]domain.Participation, error) {
	if mock.ListParticipantsFunc == nil {
		panic("questServiceMock.ListParticipantsFunc: method is nil but questService.ListParticipants was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quest.ListParticipantsInput
	}{Ctx: ctx, Input: input}
	mock.lockListParticipants.Lock()
	mock.calls.ListParticipants = append(mock.calls.ListParticipants, callInfo)
	mock.lockListParticipants.Unlock()
	return mock.ListParticipantsFunc(ctx, input)
}

func (mock *questServiceMock) ListParticipantsCalls() []struct {
	Ctx   context.Context
	Input quest.ListParticipantsInput
} {
	mock.lockListParticipants.RLock()
	calls := mock.calls.ListParticipants
	mock.lockListParticipants.RUnlock()
	return calls
}
