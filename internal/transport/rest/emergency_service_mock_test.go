package rest

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/emergency"
)

var _ emergencyService = &emergencyServiceMock{}

type emergencyServiceMock struct {
	StoreCallFunc    func(ctx context.Context, input emergency.StoreCallInput) (*domain.Call, error)
	ListContactsFunc func(ctx context.Context) ([]domain.ContactSummary, error)
	GetContactFunc   func(ctx context.Context, id string) (*domain.ContactSummary, error)

	calls struct {
		StoreCall []struct {
			Ctx   context.Context
			Input emergency.StoreCallInput
		}
		ListContacts []struct {
			Ctx context.Context
		}
		GetContact []struct {
			Ctx context.Context
			Id  string
		}
	}
	lockStoreCall    sync.RWMutex
	lockListContacts sync.RWMutex
	lockGetContact   sync.RWMutex
}

func (mock *emergencyServiceMock) StoreCall(ctx context.Context, input emergency.StoreCallInput) (*domain.Call, error) {
	if mock.StoreCallFunc == nil {
		panic("emergencyServiceMock.StoreCallFunc: method is nil but emergencyService.StoreCall was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input emergency.StoreCallInput
	}{
		Ctx: ctx,
		Input: input,
	}
	mock.lockStoreCall.Lock()
	mock.calls.StoreCall = append(mock.calls.StoreCall, callInfo)
	mock.lockStoreCall.Unlock()
	return mock.StoreCallFunc(ctx, input)
}

func (mock *emergencyServiceMock) StoreCallCalls() []struct {
	Ctx   context.Context
	Input emergency.StoreCallInput
} {
	mock.lockStoreCall.RLock()
	defer mock.lockStoreCall.RUnlock()
	return mock.calls.StoreCall
}

func (mock *emergencyServiceMock) ListContacts(ctx context.Context) ([]domain.ContactSummary, error) {
	if mock.ListContactsFunc == nil {
		panic("emergencyServiceMock.ListContactsFunc: method is nil but emergencyService.ListContacts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListContacts.Lock()
	mock.calls.ListContacts = append(mock.calls.ListContacts, callInfo)
	mock.lockListContacts.Unlock()
	return mock.ListContactsFunc(ctx)
}

func (mock *emergencyServiceMock) ListContactsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListContacts.RLock()
	defer mock.lockListContacts.RUnlock()
	return mock.calls.ListContacts
}

func (mock *emergencyServiceMock) GetContact(ctx context.Context, id string) (*domain.ContactSummary, error) {
	if mock.GetContactFunc == nil {
		panic("emergencyServiceMock.GetContactFunc: method is nil but emergencyService.GetContact was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{
		Ctx: ctx,
		Id: id,
	}
	mock.lockGetContact.Lock()
	mock.calls.GetContact = append(mock.calls.GetContact, callInfo)
	mock.lockGetContact.Unlock()
	return mock.GetContactFunc(ctx, id)
}

func (mock *emergencyServiceMock) GetContactCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetContact.RLock()
	defer mock.lockGetContact.RUnlock()
	return mock.calls.GetContact
}
