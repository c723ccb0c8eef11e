package emergency

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ callRepo = &callRepoMock{}

type callRepoMock struct {
	InsertFunc func(ctx context.Context, c domain.Call) (*domain.Call, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			C   domain.Call
		}
	}
	lockInsert sync.RWMutex
}

func (mock *callRepoMock) Insert(ctx context.Context, c domain.Call) (*domain.Call, error) {
	if mock.InsertFunc == nil {
		panic("callRepoMock.InsertFunc: method is nil but callRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Call
	}{
		Ctx: ctx,
		C: c,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, c)
}

func (mock *callRepoMock) InsertCalls() []struct {
	Ctx context.Context
	C   domain.Call
} {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}
