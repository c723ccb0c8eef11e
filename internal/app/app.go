package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mybayani/emergency-backend/internal/adapter/cache"
	mongoadapter "github.com/mybayani/emergency-backend/internal/adapter/mongo"
	callrepo "github.com/mybayani/emergency-backend/internal/adapter/mongo/call"
	contactrepo "github.com/mybayani/emergency-backend/internal/adapter/mongo/contact"
	"github.com/mybayani/emergency-backend/internal/adapter/postgres"
	directoryrepo "github.com/mybayani/emergency-backend/internal/adapter/postgres/directory"
	historyrepo "github.com/mybayani/emergency-backend/internal/adapter/postgres/history"
	reportrepo "github.com/mybayani/emergency-backend/internal/adapter/postgres/report"
	userrepo "github.com/mybayani/emergency-backend/internal/adapter/postgres/user"
	"github.com/mybayani/emergency-backend/internal/adapter/provider/nominatim"
	"github.com/mybayani/emergency-backend/internal/adapter/queue"
	"github.com/mybayani/emergency-backend/internal/auth"
	"github.com/mybayani/emergency-backend/internal/config"
	authsvc "github.com/mybayani/emergency-backend/internal/service/auth"
	"github.com/mybayani/emergency-backend/internal/service/directory"
	"github.com/mybayani/emergency-backend/internal/service/emergency"
	"github.com/mybayani/emergency-backend/internal/service/location"
	"github.com/mybayani/emergency-backend/internal/transport/middleware"
	"github.com/mybayani/emergency-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// every backing store, serves HTTP until ctx is cancelled, and then shuts
// down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	docs, err := mongoadapter.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := docs.Close(cctx); err != nil {
			logger.Warn("mongo disconnect", slog.String("error", err.Error()))
		}
	}()

	rc := cache.Connect(ctx, cfg.Redis, logger)
	defer rc.Close() //nolint:errcheck

	publisher := queue.NewPublisher(cfg.Broker, logger)
	defer publisher.Close() //nolint:errcheck

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
	}

	handler := buildHandler(cfg, logger, pool, docs, rc, publisher, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("stopped")
	return nil
}

func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	docs *mongoadapter.DB,
	rc *cache.Cache,
	publisher *queue.Publisher,
	limiter *middleware.RateLimiter,
) http.Handler {
	tx := postgres.NewTxManager(pool)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	emergencySvc := emergency.NewService(logger,
		callrepo.New(docs.Calls()),
		contactrepo.New(docs.Contacts()),
		publisher,
	)
	directorySvc := directory.NewService(logger,
		directoryrepo.New(pool),
		reportrepo.New(pool),
		historyrepo.New(pool),
		tx,
		rc,
		cfg.Redis,
	)
	locationSvc := location.NewService(logger,
		nominatim.NewProvider(cfg.Geocode, logger),
		rc,
		cfg.Redis,
		cfg.Location,
	)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwt, cfg.Auth)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if limiter != nil {
		mws = append(mws, limiter.Middleware())
	}
	mws = append(mws, middleware.Auth(authService))

	return rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "postgres", Pinger: pool},
			rest.HealthCheck{Name: "mongo", Pinger: docs},
			rest.HealthCheck{Name: "redis", Pinger: rc, Optional: true},
		),
		Emergency: rest.NewEmergencyHandler(emergencySvc, logger),
		Directory: rest.NewDirectoryHandler(directorySvc, logger),
		Location:  rest.NewLocationHandler(locationSvc, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Admin:     rest.NewAdminHandler(directorySvc, logger),
	}, mws...)
}
