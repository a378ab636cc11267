package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	ListFunc   func(ctx context.Context, activityID string) ([]*domain.Feedback, error)
	SubmitFunc func(ctx context.Context, input feedback.SubmitInput) (uuid.UUID, error)

	calls struct {
		List []struct {
			Ctx        context.Context
			ActivityID string
		}
		Submit []struct {
			Ctx   context.Context
			Input feedback.SubmitInput
		}
	}
	lockList   sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *feedbackServiceMock) List(ctx context.Context, activityID string) ([]*domain.Feedback, error) {
	if mock.ListFunc == nil {
		panic("feedbackServiceMock.ListFunc: method is nil but feedbackService.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActivityID string
	}{Ctx: ctx, ActivityID: activityID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, activityID)
}

func (mock *feedbackServiceMock) ListCalls() []struct {
	Ctx        context.Context
	ActivityID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Submit(ctx context.Context, input feedback.SubmitInput) (uuid.UUID, error) {
	if mock.SubmitFunc == nil {
		panic("feedbackServiceMock.SubmitFunc: method is nil but feedbackService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *feedbackServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input feedback.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
