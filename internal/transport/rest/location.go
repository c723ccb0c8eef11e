package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mybayani/emergency-backend/internal/domain"
)

type locationService interface {
	Reverse(ctx context.Context, p domain.Point) (*domain.Location, error)
	Default() domain.Location
}

// LocationHandler serves reverse geocoding.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

// Reverse handles GET /api/v1/location/reverse?lat=&lon=.
func (h *LocationHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	p, err := requireOrigin(r)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to resolve location")
		return
	}

	loc, err := h.svc.Reverse(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to resolve location")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// Default handles GET /api/v1/location/default.
func (h *LocationHandler) Default(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Default())
}
