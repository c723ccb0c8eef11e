package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mybayani/emergency-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleError maps domain errors to status codes. Unmapped errors are
// logged and reported with the given message.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, message string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, message)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	default:
		log.ErrorContext(r.Context(), message, slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, message)
	}
}

func parseFloatParam(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a number")
	}
	return &v, nil
}

// parseOrigin reads optional lat/lon query parameters. Both or neither
// must be present.
func parseOrigin(r *http.Request) (*domain.Point, error) {
	lat, err := parseFloatParam(r, "lat")
	if err != nil {
		return nil, err
	}
	lon, err := parseFloatParam(r, "lon")
	if err != nil {
		return nil, err
	}
	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil:
		return nil, domain.NewValidationError("lat", "required")
	case lon == nil:
		return nil, domain.NewValidationError("lon", "required")
	}
	return &domain.Point{Lat: *lat, Lon: *lon}, nil
}

// requireOrigin is parseOrigin for endpoints where the point is mandatory.
func requireOrigin(r *http.Request) (domain.Point, error) {
	p, err := parseOrigin(r)
	if err != nil {
		return domain.Point{}, err
	}
	if p == nil {
		return domain.Point{}, domain.NewValidationErrors([]domain.FieldError{
			{Field: "lat", Message: "required"},
			{Field: "lon", Message: "required"},
		})
	}
	return *p, nil
}

func parseIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
