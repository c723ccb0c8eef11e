// Package seeder imports curated emergency services into the directory
// as verified entries.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// serviceCreator inserts directory entries.
type serviceCreator interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result summarizes an import run.
type Result struct {
	Inserted int
	Invalid  int
	Duration time.Duration
}

// Seeder validates parsed rows and inserts them in batches, one
// transaction per batch.
type Seeder struct {
	log   *slog.Logger
	repo  serviceCreator
	tx    txManager
	cfg   Config
	clock func() time.Time
}

// New creates a Seeder.
func New(log *slog.Logger, repo serviceCreator, tx txManager, cfg Config) *Seeder {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	return &Seeder{log: log.With("service", "seeder"), repo: repo, tx: tx, cfg: cfg, clock: time.Now}
}

// Run imports rows. Invalid rows are logged and skipped; a database
// failure aborts the run, keeping batches committed so far.
func (s *Seeder) Run(ctx context.Context, rows []Row) (Result, error) {
	start := s.clock()
	var res Result

	valid := make([]*domain.Service, 0, len(rows))
	for _, row := range rows {
		svc, err := row.Input.Prepare()
		if err != nil {
			res.Invalid++
			s.log.WarnContext(ctx, "skipping invalid row",
				slog.Int("line", row.Line),
				slog.String("name", row.Input.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		svc.Verified = true
		valid = append(valid, svc)
	}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, nothing written",
			slog.Int("valid", len(valid)),
			slog.Int("invalid", res.Invalid),
		)
		res.Duration = s.clock().Sub(start)
		return res, nil
	}

	for from := 0; from < len(valid); from += s.cfg.BatchSize {
		batch := valid[from:min(from+s.cfg.BatchSize, len(valid))]
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, svc := range batch {
				if _, err := s.repo.Create(txCtx, svc); err != nil {
					return fmt.Errorf("create %q: %w", svc.Name, err)
				}
			}
			return nil
		})
		if err != nil {
			res.Duration = s.clock().Sub(start)
			return res, fmt.Errorf("seeder: batch at %d: %w", from, err)
		}
		res.Inserted += len(batch)
		s.log.InfoContext(ctx, "batch committed", slog.Int("inserted", res.Inserted), slog.Int("total", len(valid)))
	}

	res.Duration = s.clock().Sub(start)
	return res, nil
}
