package directory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// SearchInput holds the directory search parameters. Origin is optional;
// when set, every result carries its distance from it.
type SearchInput struct {
	Filter domain.SearchFilter
	Origin *domain.Point
}

// Search runs the search_contacts lookup. Empty filter fields do not
// restrict the result and the stored function's ordering is kept.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]domain.RankedService, error) {
	if err := validateOrigin(in.Origin); err != nil {
		return nil, err
	}
	if in.Filter.Type != "" && !domain.ServiceType(in.Filter.Type).IsValid() {
		return nil, domain.NewValidationError("type", "unknown service type")
	}

	f := in.Filter
	f.Name = domain.FoldSearchTerm(f.Name)
	f.Region = domain.NormalizeText(f.Region)
	f.Category = domain.NormalizeText(f.Category)
	f.Classification = domain.NormalizeText(f.Classification)

	rows, err := s.services.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("directory.Search: %w", err)
	}

	out := make([]domain.RankedService, len(rows))
	for i, svc := range rows {
		out[i] = rank(svc, in.Origin)
	}
	roundDistances(out)
	return out, nil
}

// Nearest returns every service of type t ordered by distance from
// origin. Services without coordinates come last, in name order.
func (s *Service) Nearest(ctx context.Context, t domain.ServiceType, origin domain.Point) ([]domain.RankedService, error) {
	if !t.IsValid() {
		return nil, domain.NewValidationError("type", "unknown service type")
	}
	if err := validateOrigin(&origin); err != nil {
		return nil, err
	}

	rows, err := s.services.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("directory.Nearest: %w", err)
	}

	out := make([]domain.RankedService, len(rows))
	for i, svc := range rows {
		out[i] = rank(svc, &origin)
	}
	slices.SortStableFunc(out, compareDistance)
	roundDistances(out)
	return out, nil
}

// GetService returns one directory entry.
func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory.GetService: %w", err)
	}
	return svc, nil
}

// rank annotates svc with its distance from origin. The distance stays
// nil when either side lacks coordinates.
func rank(svc domain.Service, origin *domain.Point) domain.RankedService {
	r := domain.RankedService{Service: svc}
	if origin == nil {
		return r
	}
	if p, ok := svc.Point(); ok {
		d := domain.DistanceKm(*origin, p)
		r.DistanceKm = &d
	}
	return r
}

// roundDistances rounds to one decimal for display. Sort first.
func roundDistances(rs []domain.RankedService) {
	for i := range rs {
		if rs[i].DistanceKm != nil {
			d := domain.RoundKm(*rs[i].DistanceKm)
			rs[i].DistanceKm = &d
		}
	}
}

func compareDistance(a, b domain.RankedService) int {
	switch {
	case a.DistanceKm == nil && b.DistanceKm == nil:
		return 0
	case a.DistanceKm == nil:
		return 1
	case b.DistanceKm == nil:
		return -1
	}
	return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
}

func validateOrigin(p *domain.Point) error {
	if p == nil || p.Valid() {
		return nil
	}
	var errs []domain.FieldError
	if !(domain.Point{Lat: p.Lat}).Valid() {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "out of range"})
	}
	if !(domain.Point{Lon: p.Lon}).Valid() {
		errs = append(errs, domain.FieldError{Field: "lon", Message: "out of range"})
	}
	return domain.NewValidationErrors(errs)
}
