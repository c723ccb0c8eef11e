// Command seeder imports a CSV of curated emergency services into the
// directory as verified entries. It is intended to be run offline, not as
// part of the main server.
//
// Flags:
//
//	--csv            path to the services CSV (overrides SEEDER_CSV_PATH)
//	--dry-run        validate the CSV without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mybayani/emergency-backend/internal/adapter/postgres"
	"github.com/mybayani/emergency-backend/internal/adapter/postgres/directory"
	"github.com/mybayani/emergency-backend/internal/app"
	"github.com/mybayani/emergency-backend/internal/app/seeder"
	"github.com/mybayani/emergency-backend/internal/config"
)

func main() {
	csvFlag := flag.String("csv", "", "path to the services CSV")
	dryRunFlag := flag.Bool("dry-run", false, "validate the CSV without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *csvFlag != "" {
		seederCfg.CSVPath = *csvFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.CSVPath == "" {
		logger.Error("no CSV path: pass --csv or set SEEDER_CSV_PATH")
		os.Exit(1)
	}

	f, err := os.Open(seederCfg.CSVPath)
	if err != nil {
		logger.Error("open csv", slog.String("error", err.Error()))
		os.Exit(1)
	}
	rows, err := seeder.ParseCSV(f)
	f.Close()
	if err != nil {
		logger.Error("parse csv", slog.String("path", seederCfg.CSVPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, directory.New(pool), postgres.NewTxManager(pool), *seederCfg)
	res, err := s.Run(ctx, rows)
	logger.Info("seeding finished",
		slog.Int("rows", len(rows)),
		slog.Int("inserted", res.Inserted),
		slog.Int("invalid", res.Invalid),
		slog.Duration("duration", res.Duration),
	)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
