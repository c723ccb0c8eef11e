// Package report implements the flagged-entry repository using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mybayani/emergency-backend/internal/adapter/postgres"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertReportedSQL = `
SELECT id, service_id, reported_by, reason, created_at
FROM insert_reported($1, $2, $3)`

type reportRow struct {
	ID          int64      `db:"id"`
	ServiceID   int64      `db:"service_id"`
	ReportedBy  *uuid.UUID `db:"reported_by"`
	Reason      *string    `db:"reason"`
	CreatedAt   time.Time  `db:"created_at"`
	ServiceName string     `db:"service_name"`
}

// Create flags a service through the insert_reported stored function.
// Returns domain.ErrNotFound if the service does not exist.
func (r *Repo) Create(ctx context.Context, serviceID int64, reportedBy *uuid.UUID, reason *string) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row reportRow
	if err := pgxscan.Get(ctx, q, &row, insertReportedSQL, serviceID, reportedBy, reason); err != nil {
		return nil, postgres.MapError(err, "report for service", serviceID)
	}

	out := toDomain(row)
	return &out, nil
}

// List returns reports newest first together with the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Report, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Select("r.id", "r.service_id", "r.reported_by", "r.reason", "r.created_at", "s.name AS service_name").
		From("reports r").
		Join("services s ON s.id = r.service_id").
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reports query: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "reports", nil)
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("reports").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count reports query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "reports count", nil)
	}

	reports := make([]domain.Report, len(rows))
	for i, row := range rows {
		reports[i] = toDomain(row)
	}
	return reports, total, nil
}

func toDomain(row reportRow) domain.Report {
	return domain.Report{
		ID:          row.ID,
		ServiceID:   row.ServiceID,
		ReportedBy:  row.ReportedBy,
		Reason:      row.Reason,
		CreatedAt:   row.CreatedAt,
		ServiceName: row.ServiceName,
	}
}
