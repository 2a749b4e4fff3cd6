package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/shopforge/admin-api/config"
)

// RunConfig groups everything Run needs to serve until shutdown.
type RunConfig struct {
	Config      *config.AppConfig
	Services    *ServiceContainer
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// everything down gracefully.
func Run(ctx context.Context, cfg *RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()

		// Shutdown uses a fresh context: the signal context is already done.
		if err := ShutdownHTTPServer(context.Background(), server, logger); err != nil {
			return err
		}
		if cfg.Services != nil && cfg.Services.Metrics != nil {
			if err := cfg.Services.Metrics.Close(); err != nil {
				logger.Warn("close metrics sink failed", "error", err)
			}
		}
		return nil
	})

	return g.Wait()
}
