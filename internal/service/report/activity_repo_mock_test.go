package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListFunc func(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.ActivityFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *activityRepoMock) List(ctx context.Context, f domain.ActivityFilter) ([]*domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityRepoMock.ListFunc: method is nil but activityRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ActivityFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *activityRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ActivityFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
