package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/directory"
)

type directoryService interface {
	Catalog() []directory.CatalogEntry
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	Search(ctx context.Context, in directory.SearchInput) ([]domain.RankedService, error)
	Nearest(ctx context.Context, t domain.ServiceType, origin domain.Point) ([]domain.RankedService, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	AddService(ctx context.Context, input directory.AddServiceInput) (*domain.Service, error)
	ReportService(ctx context.Context, input directory.ReportInput) (*domain.Report, error)
}

// DirectoryHandler serves the emergency service directory.
type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc directoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.With("handler", "directory")}
}

// Catalog handles GET /api/v1/services/catalog.
func (h *DirectoryHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.Catalog()
	out := make([]catalogEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = catalogEntryResponse{Type: e.Type.String(), Categories: e.Categories}
	}
	writeJSON(w, http.StatusOK, out)
}

// Filters handles GET /api/v1/services/filters.
func (h *DirectoryHandler) Filters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.FilterOptions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to retrieve filter options")
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// Search handles GET /api/v1/services/search.
func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	origin, err := parseOrigin(r)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to search services")
		return
	}

	q := r.URL.Query()
	rows, err := h.svc.Search(r.Context(), directory.SearchInput{
		Filter: domain.SearchFilter{
			Type:           q.Get("type"),
			Name:           q.Get("name"),
			Region:         q.Get("region"),
			Category:       q.Get("category"),
			Classification: q.Get("classification"),
		},
		Origin: origin,
	})
	if err != nil {
		handleError(h.log, w, r, err, "Failed to search services")
		return
	}
	writeJSON(w, http.StatusOK, toRankedResponses(rows))
}

// Nearest handles GET /api/v1/services/nearest/{type}?lat=&lon=.
func (h *DirectoryHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	origin, err := requireOrigin(r)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to find nearest services")
		return
	}

	rows, err := h.svc.Nearest(r.Context(), domain.ServiceType(chi.URLParam(r, "type")), origin)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to find nearest services")
		return
	}
	writeJSON(w, http.StatusOK, toRankedResponses(rows))
}

// Get handles GET /api/v1/services/{id}.
func (h *DirectoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err, "Failed to retrieve service")
		return
	}

	svc, err := h.svc.GetService(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to retrieve service")
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

// Add handles POST /api/v1/services. The caller must be authenticated.
func (h *DirectoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req directory.AddServiceInput
	if !decodeJSON(w, r, &req) {
		return
	}

	svc, err := h.svc.AddService(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to add service")
		return
	}
	writeJSON(w, http.StatusCreated, toServiceResponse(svc))
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// Report handles POST /api/v1/services/{id}/reports. The body is optional.
func (h *DirectoryHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err, "Failed to report service")
		return
	}

	var req reportRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.svc.ReportService(r.Context(), directory.ReportInput{ServiceID: id, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err, "Failed to report service")
		return
	}
	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}
