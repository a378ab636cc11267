package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/internal/service/artifact"
)

var _ artifactService = &artifactServiceMock{}

type artifactServiceMock struct {
	ListFunc   func(ctx context.Context, activityID string) ([]*domain.Artifact, error)
	UploadFunc func(ctx context.Context, input artifact.UploadInput) (uuid.UUID, error)

	calls struct {
		List []struct {
			Ctx        context.Context
			ActivityID string
		}
		Upload []struct {
			Ctx   context.Context
			Input artifact.UploadInput
		}
	}
	lockList   sync.RWMutex
	lockUpload sync.RWMutex
}

func (mock *artifactServiceMock) List(ctx context.Context, activityID string) ([]*domain.Artifact, error) {
	if mock.ListFunc == nil {
		panic("artifactServiceMock.ListFunc: method is nil but artifactService.List was just called")
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

func (mock *artifactServiceMock) ListCalls() []struct {
	Ctx        context.Context
	ActivityID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *artifactServiceMock) Upload(ctx context.Context, input artifact.UploadInput) (uuid.UUID, error) {
	if mock.UploadFunc == nil {
		panic("artifactServiceMock.UploadFunc: method is nil but artifactService.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input artifact.UploadInput
	}{Ctx: ctx, Input: input}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *artifactServiceMock) UploadCalls() []struct {
	Ctx   context.Context
	Input artifact.UploadInput
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
