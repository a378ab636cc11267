package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/child"
)

var _ childService = &childServiceMock{}

type childServiceMock struct {
	CreateFunc func(ctx context.Context, input child.ChildInput) (*domain.ChildProfile, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.ChildProfile, error)
	ListFunc   func(ctx context.Context) ([]*domain.ChildProfile, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input child.ChildInput) (*domain.ChildProfile, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input child.ChildInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input child.ChildInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *childServiceMock) Create(ctx context.Context, input child.ChildInput) (*domain.ChildProfile, error) {
	if mock.CreateFunc == nil {
		panic("childServiceMock.CreateFunc: method is nil but childService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input child.ChildInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *childServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input child.ChildInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *childServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("childServiceMock.DeleteFunc: method is nil but childService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *childServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *childServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.ChildProfile, error) {
	if mock.GetFunc == nil {
		panic("childServiceMock.GetFunc: method is nil but childService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *childServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *childServiceMock) List(ctx context.Context) ([]*domain.ChildProfile, error) {
	if mock.ListFunc == nil {
		panic("childServiceMock.ListFunc: method is nil but childService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *childServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *childServiceMock) Update(ctx context.Context, id uuid.UUID, input child.ChildInput) (*domain.ChildProfile, error) {
	if mock.UpdateFunc == nil {
		panic("childServiceMock.UpdateFunc: method is nil but childService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input child.ChildInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *childServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input child.ChildInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
