package directory

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// CatalogEntry lists the categories a service type accepts.
type CatalogEntry struct {
	Type       domain.ServiceType
	Categories []string
}

// Catalog returns every service type with its categories, in display order.
func (s *Service) Catalog() []CatalogEntry {
	types := domain.ServiceTypes()
	out := make([]CatalogEntry, len(types))
	for i, t := range types {
		out[i] = CatalogEntry{Type: t, Categories: t.Categories()}
	}
	return out
}

// FilterOptions returns the distinct values offered by the search form.
// The four lookups run concurrently and the result is cached.
func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	key := s.filterOptionsKey()

	var cached domain.FilterOptions
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	var opts domain.FilterOptions
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		opts.Regions, err = s.services.UniqueRegions(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Categories, err = s.services.UniqueCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Classifications, err = s.services.UniqueClassifications(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Types, err = s.services.UniqueTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("directory.FilterOptions: %w", err)
	}

	opts.Regions = nonNil(opts.Regions)
	opts.Categories = nonNil(opts.Categories)
	opts.Classifications = nonNil(opts.Classifications)
	opts.Types = nonNil(opts.Types)

	s.cache.SetJSON(ctx, key, opts, s.cacheTTL)
	s.log.DebugContext(ctx, "filter options loaded",
		slog.Int("regions", len(opts.Regions)),
		slog.Int("categories", len(opts.Categories)),
	)
	return &opts, nil
}

func (s *Service) filterOptionsKey() string {
	return s.cache.Key("directory", "filter-options")
}

// invalidateFilterOptions drops cached filter options after a write
// that can add new values.
func (s *Service) invalidateFilterOptions(ctx context.Context) {
	s.cache.Delete(ctx, s.filterOptionsKey())
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
