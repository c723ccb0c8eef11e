package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role controls access to administrative operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role grants admin access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
