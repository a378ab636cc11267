package child

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

var _ childRepo = &childRepoMock{}

type childRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	GetFunc        func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.ChildProfile, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.ChildProfile, error)
	UpdateFunc     func(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.ChildProfile
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			C   *domain.ChildProfile
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGet        sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *childRepoMock) Create(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error) {
	if mock.CreateFunc == nil {
		panic("childRepoMock.CreateFunc: method is nil but childRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.ChildProfile
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *childRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.ChildProfile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *childRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("childRepoMock.DeleteFunc: method is nil but childRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *childRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *childRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ChildProfile, error) {
	if mock.ListByUserFunc == nil {
		panic("childRepoMock.ListByUserFunc: method is nil but childRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *childRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *childRepoMock) Update(ctx context.Context, c *domain.ChildProfile) (*domain.ChildProfile, error) {
	if mock.UpdateFunc == nil {
		panic("childRepoMock.UpdateFunc: method is nil but childRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.ChildProfile
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *childRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.ChildProfile
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
