package rest

import (
	"context"
	"sync"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/directory"
)

var _ directoryService = &directoryServiceMock{}

type directoryServiceMock struct {
	CatalogFunc       func() []directory.CatalogEntry
	FilterOptionsFunc func(ctx context.Context) (*domain.FilterOptions, error)
	SearchFunc        func(ctx context.Context, in directory.SearchInput) ([]domain.RankedService, error)
	NearestFunc       func(ctx context.Context, t domain.ServiceType, origin domain.Point) ([]domain.RankedService, error)
	GetServiceFunc    func(ctx context.Context, id int64) (*domain.Service, error)
	AddServiceFunc    func(ctx context.Context, input directory.AddServiceInput) (*domain.Service, error)
	ReportServiceFunc func(ctx context.Context, input directory.ReportInput) (*domain.Report, error)

	calls struct {
		Catalog []struct{}
		FilterOptions []struct {
			Ctx context.Context
		}
		Search []struct {
			Ctx context.Context
			In  directory.SearchInput
		}
		Nearest []struct {
			Ctx    context.Context
			T      domain.ServiceType
			Origin domain.Point
		}
		GetService []struct {
			Ctx context.Context
			Id  int64
		}
		AddService []struct {
			Ctx   context.Context
			Input directory.AddServiceInput
		}
		ReportService []struct {
			Ctx   context.Context
			Input directory.ReportInput
		}
	}
	lockCatalog       sync.RWMutex
	lockFilterOptions sync.RWMutex
	lockSearch        sync.RWMutex
	lockNearest       sync.RWMutex
	lockGetService    sync.RWMutex
	lockAddService    sync.RWMutex
	lockReportService sync.RWMutex
}

func (mock *directoryServiceMock) Catalog() []directory.CatalogEntry {
	if mock.CatalogFunc == nil {
		panic("directoryServiceMock.CatalogFunc: method is nil but directoryService.Catalog was just called")
	}
	mock.lockCatalog.Lock()
	mock.calls.Catalog = append(mock.calls.Catalog, struct{}{})
	mock.lockCatalog.Unlock()
	return mock.CatalogFunc()
}

func (mock *directoryServiceMock) CatalogCalls() []struct{} {
	mock.lockCatalog.RLock()
	defer mock.lockCatalog.RUnlock()
	return mock.calls.Catalog
}

func (mock *directoryServiceMock) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	if mock.FilterOptionsFunc == nil {
		panic("directoryServiceMock.FilterOptionsFunc: method is nil but directoryService.FilterOptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFilterOptions.Lock()
	mock.calls.FilterOptions = append(mock.calls.FilterOptions, callInfo)
	mock.lockFilterOptions.Unlock()
	return mock.FilterOptionsFunc(ctx)
}

func (mock *directoryServiceMock) FilterOptionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockFilterOptions.RLock()
	defer mock.lockFilterOptions.RUnlock()
	return mock.calls.FilterOptions
}

func (mock *directoryServiceMock) Search(ctx context.Context, in directory.SearchInput) ([]domain.RankedService, error) {
	if mock.SearchFunc == nil {
		panic("directoryServiceMock.SearchFunc: method is nil but directoryService.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  directory.SearchInput
	}{
		Ctx: ctx,
		In: in,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, in)
}

func (mock *directoryServiceMock) SearchCalls() []struct {
	Ctx context.Context
	In  directory.SearchInput
} {
	mock.lockSearch.RLock()
	defer mock.lockSearch.RUnlock()
	return mock.calls.Search
}

func (mock *directoryServiceMock) Nearest(ctx context.Context, t domain.ServiceType, origin domain.Point) ([]domain.RankedService, error) {
	if mock.NearestFunc == nil {
		panic("directoryServiceMock.NearestFunc: method is nil but directoryService.Nearest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		T      domain.ServiceType
		Origin domain.Point
	}{
		Ctx: ctx,
		T: t,
		Origin: origin,
	}
	mock.lockNearest.Lock()
	mock.calls.Nearest = append(mock.calls.Nearest, callInfo)
	mock.lockNearest.Unlock()
	return mock.NearestFunc(ctx, t, origin)
}

func (mock *directoryServiceMock) NearestCalls() []struct {
	Ctx    context.Context
	T      domain.ServiceType
	Origin domain.Point
} {
	mock.lockNearest.RLock()
	defer mock.lockNearest.RUnlock()
	return mock.calls.Nearest
}

func (mock *directoryServiceMock) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	if mock.GetServiceFunc == nil {
		panic("directoryServiceMock.GetServiceFunc: method is nil but directoryService.GetService was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id: id,
	}
	mock.lockGetService.Lock()
	mock.calls.GetService = append(mock.calls.GetService, callInfo)
	mock.lockGetService.Unlock()
	return mock.GetServiceFunc(ctx, id)
}

func (mock *directoryServiceMock) GetServiceCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetService.RLock()
	defer mock.lockGetService.RUnlock()
	return mock.calls.GetService
}

func (mock *directoryServiceMock) AddService(ctx context.Context, input directory.AddServiceInput) (*domain.Service, error) {
	if mock.AddServiceFunc == nil {
		panic("directoryServiceMock.AddServiceFunc: method is nil but directoryService.AddService was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input directory.AddServiceInput
	}{
		Ctx: ctx,
		Input: input,
	}
	mock.lockAddService.Lock()
	mock.calls.AddService = append(mock.calls.AddService, callInfo)
	mock.lockAddService.Unlock()
	return mock.AddServiceFunc(ctx, input)
}

func (mock *directoryServiceMock) AddServiceCalls() []struct {
	Ctx   context.Context
	Input directory.AddServiceInput
} {
	mock.lockAddService.RLock()
	defer mock.lockAddService.RUnlock()
	return mock.calls.AddService
}

func (mock *directoryServiceMock) ReportService(ctx context.Context, input directory.ReportInput) (*domain.Report, error) {
	if mock.ReportServiceFunc == nil {
		panic("directoryServiceMock.ReportServiceFunc: method is nil but directoryService.ReportService was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input directory.ReportInput
	}{
		Ctx: ctx,
		Input: input,
	}
	mock.lockReportService.Lock()
	mock.calls.ReportService = append(mock.calls.ReportService, callInfo)
	mock.lockReportService.Unlock()
	return mock.ReportServiceFunc(ctx, input)
}

func (mock *directoryServiceMock) ReportServiceCalls() []struct {
	Ctx   context.Context
	Input directory.ReportInput
} {
	mock.lockReportService.RLock()
	defer mock.lockReportService.RUnlock()
	return mock.calls.ReportService
}
