package rest

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/directory"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	SetVerifiedFunc func(ctx context.Context, id int64, verified bool) (*domain.Service, error)
	ListReportsFunc func(ctx context.Context, limit int, offset int) (*directory.ReportPage, error)

	calls struct {
		SetVerified []struct {
			Ctx      context.Context
			Id       int64
			Verified bool
		}
		ListReports []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockSetVerified sync.RWMutex
	lockListReports sync.RWMutex
}

func (mock *adminServiceMock) SetVerified(ctx context.Context, id int64, verified bool) (*domain.Service, error) {
	if mock.SetVerifiedFunc == nil {
		panic("adminServiceMock.SetVerifiedFunc: method is nil but adminService.SetVerified was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       int64
		Verified bool
	}{
		Ctx: ctx,
		Id: id,
		Verified: verified,
	}
	mock.lockSetVerified.Lock()
	mock.calls.SetVerified = append(mock.calls.SetVerified, callInfo)
	mock.lockSetVerified.Unlock()
	return mock.SetVerifiedFunc(ctx, id, verified)
}

func (mock *adminServiceMock) SetVerifiedCalls() []struct {
	Ctx      context.Context
	Id       int64
	Verified bool
} {
	mock.lockSetVerified.RLock()
	defer mock.lockSetVerified.RUnlock()
	return mock.calls.SetVerified
}

func (mock *adminServiceMock) ListReports(ctx context.Context, limit int, offset int) (*directory.ReportPage, error) {
	if mock.ListReportsFunc == nil {
		panic("adminServiceMock.ListReportsFunc: method is nil but adminService.ListReports was just called")
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
	mock.lockListReports.Lock()
	mock.calls.ListReports = append(mock.calls.ListReports, callInfo)
	mock.lockListReports.Unlock()
	return mock.ListReportsFunc(ctx, limit, offset)
}

func (mock *adminServiceMock) ListReportsCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListReports.RLock()
	defer mock.lockListReports.RUnlock()
	return mock.calls.ListReports
}
