package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req auth.SignUpInput
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignUp(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req auth.SignInInput
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignIn(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
