// Package nominatim resolves coordinates to an address using the
// OpenStreetMap Nominatim reverse geocoding API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mybayani/emergency-backend/internal/config"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Provider calls the Nominatim /reverse endpoint.
type Provider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from geocode settings.
func NewProvider(cfg config.GeocodeConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "nominatim"),
	}
}

// Reverse returns the address at p. Address parts missing from the
// response are reported as domain.Unknown. Transport failures and
// non-200 responses wrap domain.ErrUnavailable.
func (p *Provider) Reverse(ctx context.Context, pt domain.Point) (*domain.Location, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(pt.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(pt.Lon, 'f', -1, 64))
	reqURL := p.baseURL + "/reverse?" + q.Encode()

	p.log.DebugContext(ctx, "nominatim request",
		slog.Float64("lat", pt.Lat),
		slog.Float64("lon", pt.Lon),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: request failed: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: unexpected status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("nominatim: decode json: %w: %w", domain.ErrUnavailable, err)
	}
	if body.Error != "" {
		p.log.DebugContext(ctx, "nominatim no result", slog.String("reason", body.Error))
	}

	return mapAddress(body.Address, pt), nil
}

func mapAddress(a address, pt domain.Point) *domain.Location {
	return &domain.Location{
		City:      firstNonEmpty(a.City, a.Town),
		Region:    firstNonEmpty(a.Region, a.State),
		Barangay:  firstNonEmpty(a.Quarter, a.Neighbourhood),
		Country:   firstNonEmpty(a.Country),
		Latitude:  pt.Lat,
		Longitude: pt.Lon,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return domain.Unknown
}
