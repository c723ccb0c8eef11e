package location

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ geocoder = &geocoderMock{}

type geocoderMock struct {
	ReverseFunc func(ctx context.Context, p domain.Point) (*domain.Location, error)

	calls struct {
		Reverse []struct {
			Ctx context.Context
			P   domain.Point
		}
	}
	lockReverse sync.RWMutex
}

func (mock *geocoderMock) Reverse(ctx context.Context, p domain.Point) (*domain.Location, error) {
	if mock.ReverseFunc == nil {
		panic("geocoderMock.ReverseFunc: method is nil but geocoder.Reverse was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Point
	}{
		Ctx: ctx,
		P: p,
	}
	mock.lockReverse.Lock()
	mock.calls.Reverse = append(mock.calls.Reverse, callInfo)
	mock.lockReverse.Unlock()
	return mock.ReverseFunc(ctx, p)
}

func (mock *geocoderMock) ReverseCalls() []struct {
	Ctx context.Context
	P   domain.Point
} {
	mock.lockReverse.RLock()
	defer mock.lockReverse.RUnlock()
	return mock.calls.Reverse
}
