// Package directory implements the emergency service directory: lookup,
// search, nearest-service ranking, community submissions and reports.
package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mybayani/emergency-backend/internal/config"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// serviceRepo defines the directory persistence needed by the service.
type serviceRepo interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByType(ctx context.Context, t domain.ServiceType) ([]domain.Service, error)
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Service, error)
	UniqueRegions(ctx context.Context) ([]string, error)
	UniqueCategories(ctx context.Context) ([]string, error)
	UniqueClassifications(ctx context.Context) ([]string, error)
	UniqueTypes(ctx context.Context) ([]string, error)
}

// reportRepo defines the report persistence needed by the service.
type reportRepo interface {
	Create(ctx context.Context, serviceID int64, reportedBy *uuid.UUID, reason *string) (*domain.Report, error)
	List(ctx context.Context, limit, offset int) ([]domain.Report, int, error)
}

// historyRepo appends audit records.
type historyRepo interface {
	Append(ctx context.Context, serviceID int64, userID uuid.UUID, change domain.ChangeType) (*domain.HistoryRecord, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jsonCache is the optional cache for filter options. A nil *cache.Cache
// satisfies it and always misses.
type jsonCache interface {
	Key(parts ...string) string
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// Service implements directory operations.
type Service struct {
	log      *slog.Logger
	services serviceRepo
	reports  reportRepo
	history  historyRepo
	tx       txManager
	cache    jsonCache
	cacheTTL time.Duration
}

// NewService creates a new directory service.
func NewService(
	logger *slog.Logger,
	services serviceRepo,
	reports reportRepo,
	history historyRepo,
	tx txManager,
	cache jsonCache,
	cfg config.RedisConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "directory"),
		services: services,
		reports:  reports,
		history:  history,
		tx:       tx,
		cache:    cache,
		cacheTTL: cfg.FilterOptsTTL,
	}
}
