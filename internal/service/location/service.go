// Package location resolves device coordinates to a named place.
package location

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mybayani/emergency-backend/internal/config"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// geocoder resolves coordinates to an address.
type geocoder interface {
	Reverse(ctx context.Context, p domain.Point) (*domain.Location, error)
}

// jsonCache is the optional geocode cache.
type jsonCache interface {
	Key(parts ...string) string
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
}

// Service implements location lookups.
type Service struct {
	log      *slog.Logger
	geocoder geocoder
	cache    jsonCache
	cacheTTL time.Duration
	fallback domain.Location
}

// NewService creates a location service.
func NewService(logger *slog.Logger, geocoder geocoder, cache jsonCache, redisCfg config.RedisConfig, cfg config.LocationConfig) *Service {
	return &Service{
		log:      logger.With("service", "location"),
		geocoder: geocoder,
		cache:    cache,
		cacheTTL: redisCfg.GeocodeTTL,
		fallback: domain.Location{
			Barangay:  cfg.FallbackBarangay,
			City:      cfg.FallbackCity,
			Region:    cfg.FallbackRegion,
			Country:   cfg.FallbackCountry,
			Latitude:  cfg.FallbackLatitude,
			Longitude: cfg.FallbackLongitude,
		},
	}
}

// Default returns the fallback location used when the device location
// is unavailable.
func (s *Service) Default() domain.Location {
	return s.fallback
}

// Reverse resolves p to an address. Results are cached by the
// coordinate rounded to four decimals (about 11 m); the returned
// latitude and longitude are always the caller's.
func (s *Service) Reverse(ctx context.Context, p domain.Point) (*domain.Location, error) {
	if !p.Valid() {
		return nil, invalidPoint(p)
	}

	key := s.cache.Key("geocode", coordKey(p.Lat), coordKey(p.Lon))

	var loc domain.Location
	if s.cache.GetJSON(ctx, key, &loc) {
		loc.Latitude, loc.Longitude = p.Lat, p.Lon
		return &loc, nil
	}

	got, err := s.geocoder.Reverse(ctx, p)
	if err != nil {
		s.log.ErrorContext(ctx, "reverse geocode failed",
			slog.Float64("lat", p.Lat),
			slog.Float64("lon", p.Lon),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("location.Reverse: %w", err)
	}

	s.cache.SetJSON(ctx, key, got, s.cacheTTL)
	out := *got
	out.Latitude, out.Longitude = p.Lat, p.Lon
	return &out, nil
}

func coordKey(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func invalidPoint(p domain.Point) error {
	var errs []domain.FieldError
	if !(domain.Point{Lat: p.Lat}).Valid() {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "out of range"})
	}
	if !(domain.Point{Lon: p.Lon}).Valid() {
		errs = append(errs, domain.FieldError{Field: "lon", Message: "out of range"})
	}
	return domain.NewValidationErrors(errs)
}
