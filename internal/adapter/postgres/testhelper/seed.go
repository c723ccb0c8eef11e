package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.RoleUser)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Phone:        "+639171234567",
		PasswordHash: "$2a$10$invalidhashfortestsonly",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, phone, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.Phone, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// ServiceSeed overrides fields of a seeded service. Zero values keep defaults.
type ServiceSeed struct {
	Type           domain.ServiceType
	Name           string
	Category       string
	Classification string
	Region         string
	Lat, Lon       *float64
	Verified       bool
}

// SeedService inserts a service row and returns its id. Names get a unique
// suffix so searches in a shared database can target them.
func SeedService(t *testing.T, pool *pgxpool.Pool, s ServiceSeed) int64 {
	t.Helper()

	if s.Type == "" {
		s.Type = domain.ServiceTypeMedical
	}
	if s.Name == "" {
		s.Name = "Seeded Service " + uniqueSuffix()
	}
	if s.Category == "" {
		s.Category = s.Type.Categories()[0]
	}

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO services (type, name, category, classification, contact_no, lat, lon, region, is_verified)
		 VALUES ($1, $2, $3, NULLIF($4, ''), '(02) 8-911-1111', $5, $6, NULLIF($7, ''), $8)
		 RETURNING id`,
		string(s.Type), s.Name, s.Category, s.Classification, s.Lat, s.Lon, s.Region, s.Verified,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedService insert: %v", err)
	}
	return id
}

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Suffix exposes uniqueSuffix for tests that need unique names.
func Suffix() string { return uniqueSuffix() }
