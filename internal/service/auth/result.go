package auth

import "github.com/mybayani/emergency-backend/internal/domain"

// AuthResult is returned by SignUp and SignIn.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
