package directory

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
)

var _ serviceRepo = &serviceRepoMock{}

type serviceRepoMock struct {
	CreateFunc                func(ctx context.Context, s *domain.Service) (*domain.Service, error)
	SetVerifiedFunc           func(ctx context.Context, id int64, verified bool) (*domain.Service, error)
	GetByIDFunc               func(ctx context.Context, id int64) (*domain.Service, error)
	ListByTypeFunc            func(ctx context.Context, t domain.ServiceType) ([]domain.Service, error)
	SearchFunc                func(ctx context.Context, f domain.SearchFilter) ([]domain.Service, error)
	UniqueRegionsFunc         func(ctx context.Context) ([]string, error)
	UniqueCategoriesFunc      func(ctx context.Context) ([]string, error)
	UniqueClassificationsFunc func(ctx context.Context) ([]string, error)
	UniqueTypesFunc           func(ctx context.Context) ([]string, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Service
		}
		SetVerified []struct {
			Ctx      context.Context
			Id       int64
			Verified bool
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		ListByType []struct {
			Ctx context.Context
			T   domain.ServiceType
		}
		Search []struct {
			Ctx context.Context
			F   domain.SearchFilter
		}
		UniqueRegions []struct {
			Ctx context.Context
		}
		UniqueCategories []struct {
			Ctx context.Context
		}
		UniqueClassifications []struct {
			Ctx context.Context
		}
		UniqueTypes []struct {
			Ctx context.Context
		}
	}
	lockCreate                sync.RWMutex
	lockSetVerified           sync.RWMutex
	lockGetByID               sync.RWMutex
	lockListByType            sync.RWMutex
	lockSearch                sync.RWMutex
	lockUniqueRegions         sync.RWMutex
	lockUniqueCategories      sync.RWMutex
	lockUniqueClassifications sync.RWMutex
	lockUniqueTypes           sync.RWMutex
}

func (mock *serviceRepoMock) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	if mock.CreateFunc == nil {
		panic("serviceRepoMock.CreateFunc: method is nil but serviceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Service
	}{
		Ctx: ctx,
		S: s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *serviceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Service
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *serviceRepoMock) SetVerified(ctx context.Context, id int64, verified bool) (*domain.Service, error) {
	if mock.SetVerifiedFunc == nil {
		panic("serviceRepoMock.SetVerifiedFunc: method is nil but serviceRepo.SetVerified was just called")
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

func (mock *serviceRepoMock) SetVerifiedCalls() []struct {
	Ctx      context.Context
	Id       int64
	Verified bool
} {
	mock.lockSetVerified.RLock()
	defer mock.lockSetVerified.RUnlock()
	return mock.calls.SetVerified
}

func (mock *serviceRepoMock) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if mock.GetByIDFunc == nil {
		panic("serviceRepoMock.GetByIDFunc: method is nil but serviceRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id: id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *serviceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *serviceRepoMock) ListByType(ctx context.Context, t domain.ServiceType) ([]domain.Service, error) {
	if mock.ListByTypeFunc == nil {
		panic("serviceRepoMock.ListByTypeFunc: method is nil but serviceRepo.ListByType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.ServiceType
	}{
		Ctx: ctx,
		T: t,
	}
	mock.lockListByType.Lock()
	mock.calls.ListByType = append(mock.calls.ListByType, callInfo)
	mock.lockListByType.Unlock()
	return mock.ListByTypeFunc(ctx, t)
}

func (mock *serviceRepoMock) ListByTypeCalls() []struct {
	Ctx context.Context
	T   domain.ServiceType
} {
	mock.lockListByType.RLock()
	defer mock.lockListByType.RUnlock()
	return mock.calls.ListByType
}

func (mock *serviceRepoMock) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Service, error) {
	if mock.SearchFunc == nil {
		panic("serviceRepoMock.SearchFunc: method is nil but serviceRepo.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SearchFilter
	}{
		Ctx: ctx,
		F: f,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *serviceRepoMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.SearchFilter
} {
	mock.lockSearch.RLock()
	defer mock.lockSearch.RUnlock()
	return mock.calls.Search
}

func (mock *serviceRepoMock) UniqueRegions(ctx context.Context) ([]string, error) {
	if mock.UniqueRegionsFunc == nil {
		panic("serviceRepoMock.UniqueRegionsFunc: method is nil but serviceRepo.UniqueRegions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockUniqueRegions.Lock()
	mock.calls.UniqueRegions = append(mock.calls.UniqueRegions, callInfo)
	mock.lockUniqueRegions.Unlock()
	return mock.UniqueRegionsFunc(ctx)
}

func (mock *serviceRepoMock) UniqueRegionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockUniqueRegions.RLock()
	defer mock.lockUniqueRegions.RUnlock()
	return mock.calls.UniqueRegions
}

func (mock *serviceRepoMock) UniqueCategories(ctx context.Context) ([]string, error) {
	if mock.UniqueCategoriesFunc == nil {
		panic("serviceRepoMock.UniqueCategoriesFunc: method is nil but serviceRepo.UniqueCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockUniqueCategories.Lock()
	mock.calls.UniqueCategories = append(mock.calls.UniqueCategories, callInfo)
	mock.lockUniqueCategories.Unlock()
	return mock.UniqueCategoriesFunc(ctx)
}

func (mock *serviceRepoMock) UniqueCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockUniqueCategories.RLock()
	defer mock.lockUniqueCategories.RUnlock()
	return mock.calls.UniqueCategories
}

func (mock *serviceRepoMock) UniqueClassifications(ctx context.Context) ([]string, error) {
	if mock.UniqueClassificationsFunc == nil {
		panic("serviceRepoMock.UniqueClassificationsFunc: method is nil but serviceRepo.UniqueClassifications was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockUniqueClassifications.Lock()
	mock.calls.UniqueClassifications = append(mock.calls.UniqueClassifications, callInfo)
	mock.lockUniqueClassifications.Unlock()
	return mock.UniqueClassificationsFunc(ctx)
}

func (mock *serviceRepoMock) UniqueClassificationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockUniqueClassifications.RLock()
	defer mock.lockUniqueClassifications.RUnlock()
	return mock.calls.UniqueClassifications
}

func (mock *serviceRepoMock) UniqueTypes(ctx context.Context) ([]string, error) {
	if mock.UniqueTypesFunc == nil {
		panic("serviceRepoMock.UniqueTypesFunc: method is nil but serviceRepo.UniqueTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockUniqueTypes.Lock()
	mock.calls.UniqueTypes = append(mock.calls.UniqueTypes, callInfo)
	mock.lockUniqueTypes.Unlock()
	return mock.UniqueTypesFunc(ctx)
}

func (mock *serviceRepoMock) UniqueTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockUniqueTypes.RLock()
	defer mock.lockUniqueTypes.RUnlock()
	return mock.calls.UniqueTypes
}
