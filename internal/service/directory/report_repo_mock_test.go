package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc func(ctx context.Context, serviceID int64, reportedBy *uuid.UUID, reason *string) (*domain.Report, error)
	ListFunc   func(ctx context.Context, limit int, offset int) ([]domain.Report, int, error)

	calls struct {
		Create []struct {
			Ctx        context.Context
			ServiceID  int64
			ReportedBy *uuid.UUID
			Reason     *string
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, serviceID int64, reportedBy *uuid.UUID, reason *string) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ServiceID  int64
		ReportedBy *uuid.UUID
		Reason     *string
	}{
		Ctx: ctx,
		ServiceID: serviceID,
		ReportedBy: reportedBy,
		Reason: reason,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, serviceID, reportedBy, reason)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	ServiceID  int64
	ReportedBy *uuid.UUID
	Reason     *string
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *reportRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Report, int, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx: ctx,
		Limit: limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}
