// Package history implements the service history repository using PostgreSQL.
// It provides append-only operations for change records.
package history

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mybayani/emergency-backend/internal/adapter/postgres"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const historyColumns = `id, service_id, user_id, change_type, date_modified`

const appendSQL = `
INSERT INTO history (service_id, user_id, change_type)
VALUES ($1, $2, $3)
RETURNING ` + historyColumns

const listByServiceSQL = `
SELECT ` + historyColumns + `
FROM history
WHERE service_id = $1
ORDER BY date_modified DESC, id DESC`

type historyRow struct {
	ID           int64     `db:"id"`
	ServiceID    int64     `db:"service_id"`
	UserID       uuid.UUID `db:"user_id"`
	ChangeType   string    `db:"change_type"`
	DateModified time.Time `db:"date_modified"`
}

// Append records a change to a service.
func (r *Repo) Append(ctx context.Context, serviceID int64, userID uuid.UUID, change domain.ChangeType) (*domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row historyRow
	if err := pgxscan.Get(ctx, q, &row, appendSQL, serviceID, userID, string(change)); err != nil {
		return nil, postgres.MapError(err, "history for service", serviceID)
	}

	rec := toDomain(row)
	return &rec, nil
}

// ListByService returns the change history of a service, newest first.
func (r *Repo) ListByService(ctx context.Context, serviceID int64) ([]domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []historyRow
	if err := pgxscan.Select(ctx, q, &rows, listByServiceSQL, serviceID); err != nil {
		return nil, postgres.MapError(err, "history for service", serviceID)
	}

	out := make([]domain.HistoryRecord, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

func toDomain(row historyRow) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:           row.ID,
		ServiceID:    row.ServiceID,
		UserID:       row.UserID,
		ChangeType:   domain.ChangeType(row.ChangeType),
		DateModified: row.DateModified,
	}
}
