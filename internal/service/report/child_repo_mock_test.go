package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

var _ childRepo = &childRepoMock{}

type childRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.ChildProfile, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *childRepoMock) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.ChildProfile, error) {
	if mock.GetFunc == nil {
		panic("childRepoMock.GetFunc: method is nil but childRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, id)
}

func (mock *childRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
