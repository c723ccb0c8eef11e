package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"
	"golang.org/x/crypto/bcrypt"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// SignUp creates an account and signs the user in.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	now := time.Now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        normalizePhone(input.Phone, s.cfg.PhoneRegion),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID.String()))
	return result, nil
}

// normalizePhone returns the E.164 form of phone when it is a valid
// number for region, and phone unchanged otherwise.
func normalizePhone(phone, region string) string {
	num, err := libphonenumber.Parse(phone, region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return phone
	}
	return libphonenumber.Format(num, libphonenumber.E164)
}
