// Package directory implements the service directory repository using
// PostgreSQL. Searches and filter options go through stored functions.
package directory

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mybayani/emergency-backend/internal/adapter/postgres"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Repo provides service directory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new directory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const serviceColumns = `id, type, name, category, classification, description, contact_no,
address, notes, lat, lon, barangay, city, region, is_verified, submitted_by, created_at, updated_at`

const createSQL = `
INSERT INTO services (type, name, category, classification, description, contact_no,
    address, notes, lat, lon, barangay, city, region, is_verified, submitted_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + serviceColumns

const getByIDSQL = `
SELECT ` + serviceColumns + `
FROM services
WHERE id = $1`

const setVerifiedSQL = `
UPDATE services
SET is_verified = $2, updated_at = now()
WHERE id = $1
RETURNING ` + serviceColumns

const searchSQL = `
SELECT ` + serviceColumns + `
FROM search_contacts($1, $2, $3, $4, $5)`

// Stored functions returning a single text column of distinct values.
const (
	fnUniqueRegions         = "get_unique_regions"
	fnUniqueCategories      = "get_unique_categories"
	fnUniqueClassifications = "get_unique_classifications"
	fnUniqueTypes           = "get_unique_types"
)

// serviceRow mirrors the services table for scanning.
type serviceRow struct {
	ID             int64      `db:"id"`
	Type           string     `db:"type"`
	Name           string     `db:"name"`
	Category       string     `db:"category"`
	Classification *string    `db:"classification"`
	Description    *string    `db:"description"`
	ContactNo      string     `db:"contact_no"`
	Address        *string    `db:"address"`
	Notes          *string    `db:"notes"`
	Lat            *float64   `db:"lat"`
	Lon            *float64   `db:"lon"`
	Barangay       *string    `db:"barangay"`
	City           *string    `db:"city"`
	Region         *string    `db:"region"`
	IsVerified     bool       `db:"is_verified"`
	SubmittedBy    *uuid.UUID `db:"submitted_by"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new service and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row serviceRow
	err := pgxscan.Get(ctx, q, &row, createSQL,
		string(s.Type), s.Name, s.Category, s.Classification, s.Description, s.ContactNo,
		s.Address, s.Notes, s.Lat, s.Lon, s.Barangay, s.City, s.Region, s.Verified, s.SubmittedBy,
	)
	if err != nil {
		return nil, postgres.MapError(err, "service", nil)
	}

	out := toDomain(row)
	return &out, nil
}

// SetVerified updates the verification flag of a service.
func (r *Repo) SetVerified(ctx context.Context, id int64, verified bool) (*domain.Service, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row serviceRow
	if err := pgxscan.Get(ctx, q, &row, setVerifiedSQL, id, verified); err != nil {
		return nil, postgres.MapError(err, "service", id)
	}

	out := toDomain(row)
	return &out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a service by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row serviceRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "service", id)
	}

	out := toDomain(row)
	return &out, nil
}

// ListByType returns every service of the given type ordered by name.
func (r *Repo) ListByType(ctx context.Context, t domain.ServiceType) ([]domain.Service, error) {
	query, args, err := postgres.Builder.
		Select(serviceColumns).
		From("services").
		Where(sq.Eq{"type": string(t)}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services query: %w", err)
	}

	var rows []serviceRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "services by type", t)
	}

	return toDomainList(rows), nil
}

// Search calls the search_contacts stored function. Empty filter fields
// are passed as NULL and do not restrict the result.
func (r *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Service, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []serviceRow
	err := pgxscan.Select(ctx, q, &rows, searchSQL,
		nullIfEmpty(f.Type), nullIfEmpty(f.Name), nullIfEmpty(f.Region),
		nullIfEmpty(f.Category), nullIfEmpty(f.Classification),
	)
	if err != nil {
		return nil, postgres.MapError(err, "search_contacts", nil)
	}

	return toDomainList(rows), nil
}

// UniqueRegions returns distinct non-empty regions.
func (r *Repo) UniqueRegions(ctx context.Context) ([]string, error) {
	return r.uniqueValues(ctx, fnUniqueRegions)
}

// UniqueCategories returns distinct categories.
func (r *Repo) UniqueCategories(ctx context.Context) ([]string, error) {
	return r.uniqueValues(ctx, fnUniqueCategories)
}

// UniqueClassifications returns distinct non-empty classifications.
func (r *Repo) UniqueClassifications(ctx context.Context) ([]string, error) {
	return r.uniqueValues(ctx, fnUniqueClassifications)
}

// UniqueTypes returns distinct service types present in the directory.
func (r *Repo) UniqueTypes(ctx context.Context) ([]string, error) {
	return r.uniqueValues(ctx, fnUniqueTypes)
}

func (r *Repo) uniqueValues(ctx context.Context, fn string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	values := []string{}
	if err := pgxscan.Select(ctx, q, &values, "SELECT value FROM "+fn+"()"); err != nil {
		return nil, postgres.MapError(err, fn, nil)
	}
	return values, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row serviceRow) domain.Service {
	return domain.Service{
		ID:             row.ID,
		Type:           domain.ServiceType(row.Type),
		Name:           row.Name,
		Category:       row.Category,
		Classification: row.Classification,
		Description:    row.Description,
		ContactNo:      row.ContactNo,
		Address:        row.Address,
		Notes:          row.Notes,
		Lat:            row.Lat,
		Lon:            row.Lon,
		Barangay:       row.Barangay,
		City:           row.City,
		Region:         row.Region,
		Verified:       row.IsVerified,
		SubmittedBy:    row.SubmittedBy,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toDomainList(rows []serviceRow) []domain.Service {
	out := make([]domain.Service, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
