package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc func(ctx context.Context, serviceID int64, userID uuid.UUID, change domain.ChangeType) (*domain.HistoryRecord, error)

	calls struct {
		Append []struct {
			Ctx       context.Context
			ServiceID int64
			UserID    uuid.UUID
			Change    domain.ChangeType
		}
	}
	lockAppend sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, serviceID int64, userID uuid.UUID, change domain.ChangeType) (*domain.HistoryRecord, error) {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ServiceID int64
		UserID    uuid.UUID
		Change    domain.ChangeType
	}{
		Ctx: ctx,
		ServiceID: serviceID,
		UserID: userID,
		Change: change,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, serviceID, userID, change)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Ctx       context.Context
	ServiceID int64
	UserID    uuid.UUID
	Change    domain.ChangeType
} {
	mock.lockAppend.RLock()
	defer mock.lockAppend.RUnlock()
	return mock.calls.Append
}
