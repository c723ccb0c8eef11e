package rest

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignUpFunc func(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignInFunc func(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	MeFunc     func(ctx context.Context) (*domain.User, error)

	calls struct {
		SignUp []struct {
			Ctx   context.Context
			Input auth.SignUpInput
		}
		SignIn []struct {
			Ctx   context.Context
			Input auth.SignInInput
		}
		Me []struct {
			Ctx context.Context
		}
	}
	lockSignUp sync.RWMutex
	lockSignIn sync.RWMutex
	lockMe     sync.RWMutex
}

func (mock *authServiceMock) SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error) {
	if mock.SignUpFunc == nil {
		panic("authServiceMock.SignUpFunc: method is nil but authService.SignUp was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignUpInput
	}{
		Ctx: ctx,
		Input: input,
	}
	mock.lockSignUp.Lock()
	mock.calls.SignUp = append(mock.calls.SignUp, callInfo)
	mock.lockSignUp.Unlock()
	return mock.SignUpFunc(ctx, input)
}

func (mock *authServiceMock) SignUpCalls() []struct {
	Ctx   context.Context
	Input auth.SignUpInput
} {
	mock.lockSignUp.RLock()
	defer mock.lockSignUp.RUnlock()
	return mock.calls.SignUp
}

func (mock *authServiceMock) SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignInInput
	}{
		Ctx: ctx,
		Input: input,
	}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, input)
}

func (mock *authServiceMock) SignInCalls() []struct {
	Ctx   context.Context
	Input auth.SignInInput
} {
	mock.lockSignIn.RLock()
	defer mock.lockSignIn.RUnlock()
	return mock.calls.SignIn
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	defer mock.lockMe.RUnlock()
	return mock.calls.Me
}
