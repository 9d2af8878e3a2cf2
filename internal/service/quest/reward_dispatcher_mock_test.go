package quest

import (
	"context"
	"sync"

	"github.com/questlinehq/questline-backend/internal/domain"
)

var _ rewardDispatcher = &rewardDispatcherMock{}

type rewardDispatcherMock struct {
	DistributeFunc func(ctx context.Context, address string, amount int64, currency string) (*domain.RewardReceipt, error)

	calls struct {
		Distribute []struct {
			Address  string
			Amount   int64
			Currency string
		}
	}
	lockDistribute sync.RWMutex
}

func (mock *rewardDispatcherMock) Distribute(ctx context.Context, address string, amount int64, currency string) (*domain.RewardReceipt, error) {
	if mock.DistributeFunc == nil {
		panic("rewardDispatcherMock.DistributeFunc: method is nil but rewardDispatcher.Distribute was just called")
	}
	callInfo := struct {
		Address  string
		Amount   int64
		Currency string
	}{Address: address, Amount: amount, Currency: currency}
	mock.lockDistribute.Lock()
	mock.calls.Distribute = append(mock.calls.Distribute, callInfo)
	mock.lockDistribute.Unlock()
	return mock.DistributeFunc(ctx, address, amount, currency)
}

func (mock *rewardDispatcherMock) DistributeCalls() []struct {
	Address  string
	Amount   int64
	Currency string
} {
	mock.lockDistribute.RLock()
	calls := mock.calls.Distribute
	mock.lockDistribute.RUnlock()
	return calls
}
