package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/fueleu/internal/config"
	"github.com/mmynk/fueleu/internal/handler"
	"github.com/mmynk/fueleu/internal/metrics"
	"github.com/mmynk/fueleu/internal/service"
	"github.com/mmynk/fueleu/internal/storage"
	"github.com/mmynk/fueleu/internal/storage/postgres"
	"github.com/mmynk/fueleu/internal/storage/sqlite"
	"github.com/mmynk/fueleu/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.StorageDriver)

	if cfg.SeedRoutes {
		if _, err := storage.Seed(ctx, store); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	pools, err := service.NewPoolingService(store, store,
		service.WithFetchTimeout(cfg.PoolFetchTimeout),
		service.WithFetchConcurrency(cfg.PoolFetchConcurrency),
		service.WithPoolingMetrics(m),
	)
	if err != nil {
		return err
	}

	h := handler.New(
		service.NewRouteService(store, cfg.Regime),
		service.NewComplianceService(store, store, cfg.Regime, m),
		pools,
	)

	srv := &http.Server{
		Addr: cfg.Addr,
		// h2c serves HTTP/2 without TLS alongside HTTP/1.1
		Handler:      h2c.NewHandler(newRouter(h, registry, m), &http2.Server{}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		return store, nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite storage: %w", err)
		}
		slog.Info("Using sqlite database", "path", cfg.DBPath)
		return store, nil
	}
}
