// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mybayani/emergency-backend/internal/adapter/postgres"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, email, name, phone, password_hash, role, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, email, name, phone, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE lower(email) = lower($1)`

const setRoleByEmailSQL = `
UPDATE users
SET role = $2, updated_at = now()
WHERE lower(email) = lower($1)
RETURNING ` + userColumns

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new user. Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role := u.Role
	if role == "" {
		role = domain.RoleUser
	}

	var row userRow
	err := pgxscan.Get(ctx, q, &row, createSQL,
		u.ID, u.Email, u.Name, u.Phone, u.PasswordHash, string(role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	out := toDomain(row)
	return &out, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	out := toDomain(row)
	return &out, nil
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, getByEmailSQL, email); err != nil {
		return nil, postgres.MapError(err, "user", nil)
	}

	out := toDomain(row)
	return &out, nil
}

// SetRoleByEmail changes the role of the user with the given email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, setRoleByEmailSQL, email, string(role)); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	out := toDomain(row)
	return &out, nil
}

func toDomain(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		Phone:        row.Phone,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
