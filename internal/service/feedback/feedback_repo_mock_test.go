package feedback

import (
	"context"
	"sync"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc         func(ctx context.Context, f *domain.Feedback) error
	ListByActivityFunc func(ctx context.Context, activityID string, limit uint64) ([]*domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.Feedback
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

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) error {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feedback
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListByActivity(ctx context.Context, activityID string, limit uint64) ([]*domain.Feedback, error) {
	if mock.ListByActivityFunc == nil {
		panic("feedbackRepoMock.ListByActivityFunc: method is nil but feedbackRepo.ListByActivity was just called")
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

func (mock *feedbackRepoMock) ListByActivityCalls() []struct {
	Ctx        context.Context
	ActivityID string
	Limit      uint64
} {
	mock.lockListByActivity.RLock()
	calls := mock.calls.ListByActivity
	mock.lockListByActivity.RUnlock()
	return calls
}
