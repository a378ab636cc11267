package artifact

import (
	"context"
	"sync"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

var _ artifactRepo = &artifactRepoMock{}

type artifactRepoMock struct {
	CreateFunc         func(ctx context.Context, a *domain.Artifact) error
	ListByActivityFunc func(ctx context.Context, activityID string, limit uint64) ([]*domain.Artifact, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Artifact
		}
		ListByActivity []struct {
			Ctx        context.Context
			ActivityID string
			Limit      uint64
		}
	}
	lockCreate         sync.RWMutex
	lockListByActivity sync.RWMutex
}

func (mock *artifactRepoMock) Create(ctx context.Context, a *domain.Artifact) error {
	if mock.CreateFunc == nil {
		panic("artifactRepoMock.CreateFunc: method is nil but artifactRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Artifact
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *artifactRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Artifact
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *artifactRepoMock) ListByActivity(ctx context.Context, activityID string, limit uint64) ([]*domain.Artifact, error) {
	if mock.ListByActivityFunc == nil {
		panic("artifactRepoMock.ListByActivityFunc: method is nil but artifactRepo.ListByActivity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActivityID string
		Limit      uint64
	}{Ctx: ctx, ActivityID: activityID, Limit: limit}
	mock.lockListByActivity.Lock()
	mock.calls.ListByActivity = append(mock.calls.ListByActivity, callInfo)
	mock.lockListByActivity.Unlock()
	return mock.ListByActivityFunc(ctx, activityID, limit)
}

func (mock *artifactRepoMock) ListByActivityCalls() []struct {
	Ctx        context.Context
	ActivityID string
	Limit      uint64
} {
	mock.lockListByActivity.RLock()
	calls := mock.calls.ListByActivity
	mock.lockListByActivity.RUnlock()
	return calls
}
