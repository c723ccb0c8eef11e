package rest

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ locationService = &locationServiceMock{}

type locationServiceMock struct {
	ReverseFunc func(ctx context.Context, p domain.Point) (*domain.Location, error)
	DefaultFunc func() domain.Location

	calls struct {
		Reverse []struct {
			Ctx context.Context
			P   domain.Point
		}
		Default []struct{}
	}
	lockReverse sync.RWMutex
	lockDefault sync.RWMutex
}

func (mock *locationServiceMock) Reverse(ctx context.Context, p domain.Point) (*domain.Location, error) {
	if mock.ReverseFunc == nil {
		panic("locationServiceMock.ReverseFunc: method is nil but locationService.Reverse was just called")
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

func (mock *locationServiceMock) ReverseCalls() []struct {
	Ctx context.Context
	P   domain.Point
} {
	mock.lockReverse.RLock()
	defer mock.lockReverse.RUnlock()
	return mock.calls.Reverse
}

func (mock *locationServiceMock) Default() domain.Location {
	if mock.DefaultFunc == nil {
		panic("locationServiceMock.DefaultFunc: method is nil but locationService.Default was just called")
	}
	mock.lockDefault.Lock()
	mock.calls.Default = append(mock.calls.Default, struct{}{})
	mock.lockDefault.Unlock()
	return mock.DefaultFunc()
}

func (mock *locationServiceMock) DefaultCalls() []struct{} {
	mock.lockDefault.RLock()
	defer mock.lockDefault.RUnlock()
	return mock.calls.Default
}
