package auth

import (
	"strings"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// SignUpInput holds parameters for account creation.
type SignUpInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max_bytes=72"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Phone    string `json:"phone"    validate:"required,phone"`
}

func (i *SignUpInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Name = domain.NormalizeText(i.Name)
	i.Phone = strings.TrimSpace(i.Phone)
}

// Validate checks the sign-up form.
func (i SignUpInput) Validate() error {
	return domain.ValidateStruct(i)
}

// SignInInput holds parameters for password sign-in.
type SignInInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate checks that both credentials are present.
func (i SignInInput) Validate() error {
	return domain.ValidateStruct(i)
}
