package emergency

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ callPublisher = &callPublisherMock{}

type callPublisherMock struct {
	PublishCallPlacedFunc func(ctx context.Context, c domain.Call) error

	calls struct {
		PublishCallPlaced []struct {
			Ctx context.Context
			C   domain.Call
		}
	}
	lockPublishCallPlaced sync.RWMutex
}

func (mock *callPublisherMock) PublishCallPlaced(ctx context.Context, c domain.Call) error {
	if mock.PublishCallPlacedFunc == nil {
		panic("callPublisherMock.PublishCallPlacedFunc: method is nil but callPublisher.PublishCallPlaced was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Call
	}{
		Ctx: ctx,
		C: c,
	}
	mock.lockPublishCallPlaced.Lock()
	mock.calls.PublishCallPlaced = append(mock.calls.PublishCallPlaced, callInfo)
	mock.lockPublishCallPlaced.Unlock()
	return mock.PublishCallPlacedFunc(ctx, c)
}

func (mock *callPublisherMock) PublishCallPlacedCalls() []struct {
	Ctx context.Context
	C   domain.Call
} {
	mock.lockPublishCallPlaced.RLock()
	defer mock.lockPublishCallPlaced.RUnlock()
	return mock.calls.PublishCallPlaced
}
