package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/directory"
)

type adminService interface {
	SetVerified(ctx context.Context, id int64, verified bool) (*domain.Service, error)
	ListReports(ctx context.Context, limit, offset int) (*directory.ReportPage, error)
}

// AdminHandler serves admin REST endpoints. Routes are mounted behind
// middleware.AdminOnly; the service re-checks the role.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type verificationRequest struct {
	Verified *bool `json:"verified"`
}

// SetVerification handles PATCH /api/v1/admin/services/{id}/verification.
func (h *AdminHandler) SetVerification(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}

	var req verificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Verified == nil {
		handleError(h.log, w, r, domain.NewValidationError("verified", "required"), "internal server error")
		return
	}

	svc, err := h.svc.SetVerified(r.Context(), id, *req.Verified)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

// ListReports handles GET /api/v1/admin/reports?limit=50&offset=0.
func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}
	offset, err := parseIntParam(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}

	page, err := h.svc.ListReports(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err, "internal server error")
		return
	}

	out := reportPageResponse{Reports: make([]reportResponse, len(page.Reports)), Total: page.Total}
	for i := range page.Reports {
		out.Reports[i] = toReportResponse(&page.Reports[i])
	}
	writeJSON(w, http.StatusOK, out)
}
