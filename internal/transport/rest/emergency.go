package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/emergency"
)

type emergencyService interface {
	StoreCall(ctx context.Context, input emergency.StoreCallInput) (*domain.Call, error)
	ListContacts(ctx context.Context) ([]domain.ContactSummary, error)
	GetContact(ctx context.Context, id string) (*domain.ContactSummary, error)
}

// EmergencyHandler serves call logging and hotline contacts.
type EmergencyHandler struct {
	svc emergencyService
	log *slog.Logger
}

// NewEmergencyHandler creates an EmergencyHandler.
func NewEmergencyHandler(svc emergencyService, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{svc: svc, log: logger.With("handler", "emergency")}
}

type storeCallResponse struct {
	Message string       `json:"message"`
	Data    callResponse `json:"data"`
}

// StoreCall handles POST /api/v1/emergency/call.
func (h *EmergencyHandler) StoreCall(w http.ResponseWriter, r *http.Request) {
	var req emergency.StoreCallInput
	if !decodeJSON(w, r, &req) {
		return
	}

	call, err := h.svc.StoreCall(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to store data")
		return
	}

	writeJSON(w, http.StatusOK, storeCallResponse{
		Message: "Data stored successfully",
		Data:    toCallResponse(call),
	})
}

// ListContacts handles GET /api/v1/emergency/contacts.
func (h *EmergencyHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.ListContacts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to retrieve data")
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// GetContact handles GET /api/v1/emergency/contacts/{id}.
func (h *EmergencyHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.svc.GetContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err, "Failed to retrieve contact")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}
