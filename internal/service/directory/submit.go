package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/pkg/ctxutil"
)

// AddService stores a community submission as an unverified entry and
// records a "created" history row in the same transaction.
func (s *Service) AddService(ctx context.Context, input AddServiceInput) (*domain.Service, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	svc, err := input.Prepare()
	if err != nil {
		return nil, err
	}
	svc.Verified = false
	svc.SubmittedBy = &userID

	var created *domain.Service
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.services.Create(txCtx, svc)
		if err != nil {
			return fmt.Errorf("create service: %w", err)
		}
		if _, err := s.history.Append(txCtx, created.ID, userID, domain.ChangeTypeCreated); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("directory.AddService: %w", err)
	}

	s.invalidateFilterOptions(ctx)
	s.log.InfoContext(ctx, "service submitted",
		slog.Int64("service_id", created.ID),
		slog.String("type", created.Type.String()),
		slog.String("user_id", userID.String()),
	)
	return created, nil
}

// ReportService flags an entry. Anonymous reports are accepted; the
// reporter is recorded when the caller is authenticated.
func (s *Service) ReportService(ctx context.Context, input ReportInput) (*domain.Report, error) {
	input.Reason = domain.NormalizeText(input.Reason)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reporter *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		reporter = &id
	}

	rep, err := s.reports.Create(ctx, input.ServiceID, reporter, optional(input.Reason))
	if err != nil {
		return nil, fmt.Errorf("directory.ReportService: %w", err)
	}

	s.log.InfoContext(ctx, "service reported",
		slog.Int64("service_id", input.ServiceID),
		slog.Int64("report_id", rep.ID),
		slog.Bool("anonymous", reporter == nil),
	)
	return rep, nil
}
