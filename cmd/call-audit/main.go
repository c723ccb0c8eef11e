// Command call-audit consumes call.placed events from the broker and
// writes one structured audit line per placed call to stdout.
//
// Requires AMQP_URL environment variable to be set.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/mybayani/emergency-backend/internal/adapter/queue"
	"github.com/mybayani/emergency-backend/internal/app"
	"github.com/mybayani/emergency-backend/internal/config"
)

type auditConfig struct {
	Broker config.BrokerConfig `yaml:"broker"`
	Log    config.LogConfig    `yaml:"log"`
}

func main() {
	_ = godotenv.Load()

	var cfg auditConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read env: %v", err)
	}
	if !cfg.Broker.Enabled() {
		log.Fatal("AMQP_URL environment variable is required")
	}

	logger := app.NewLogger(cfg.Log)
	audit := app.NewAuditLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := queue.NewConsumer(cfg.Broker, app.NewCallAuditHandler(audit), logger)
	logger.Info("call audit started", slog.String("queue", cfg.Broker.CallQueue))

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("call audit stopped")
}
