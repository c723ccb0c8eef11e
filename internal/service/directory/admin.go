package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/pkg/ctxutil"
)

const (
	defaultReportLimit = 50
	maxReportLimit     = 200
)

// SetVerified marks an entry as verified or unverified (admin only) and
// appends the matching history record.
func (s *Service) SetVerified(ctx context.Context, id int64, verified bool) (*domain.Service, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	adminID, _ := ctxutil.UserIDFromCtx(ctx)

	change := domain.ChangeTypeUnverified
	if verified {
		change = domain.ChangeTypeVerified
	}

	var updated *domain.Service
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.services.SetVerified(txCtx, id, verified)
		if err != nil {
			return fmt.Errorf("set verified: %w", err)
		}
		if _, err := s.history.Append(txCtx, id, adminID, change); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("directory.SetVerified: %w", err)
	}

	s.log.InfoContext(ctx, "service verification changed",
		slog.Int64("service_id", id),
		slog.Bool("verified", verified),
		slog.String("admin_id", adminID.String()),
	)
	return updated, nil
}

// ReportPage is one page of flagged entries.
type ReportPage struct {
	Reports []domain.Report
	Total   int
}

// ListReports returns flagged entries newest first (admin only).
// limit defaults to 50 and is capped at 200.
func (s *Service) ListReports(ctx context.Context, limit, offset int) (*ReportPage, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultReportLimit
	}
	limit = min(limit, maxReportLimit)
	offset = max(offset, 0)

	reports, total, err := s.reports.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("directory.ListReports: %w", err)
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	return &ReportPage{Reports: reports, Total: total}, nil
}
