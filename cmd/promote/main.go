// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user, who can then verify
// submitted services and review reports.
//
// Usage:
//
//	promote --email=user@example.com [--role=user]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	userrepo "github.com/mybayani/emergency-backend/internal/adapter/postgres/user"
	"github.com/mybayani/emergency-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote")
	role := flag.String("role", string(domain.RoleAdmin), "role to assign (admin or user)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=user]")
		os.Exit(1)
	}
	target := domain.Role(*role)
	if !target.IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := userrepo.New(pool).SetRoleByEmail(ctx, domain.NormalizeEmail(*email), target)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q is now %s.\n", user.Email, user.Role)
}
