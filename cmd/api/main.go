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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/logger"
	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	zl := logger.Setup(cfg.Env)

	if envErr != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	limits := service.Limits{
		Min:     cfg.Password.MinLength,
		Max:     cfg.Password.MaxLength,
		Default: cfg.Password.DefaultLength,
	}

	rt := routes{
		cfg:      cfg,
		gatherer: reg,
		strength: handler.NewStrengthHandler(service.NewStrengthService(m)),
	}

	// Generation statistics need the database; without it passwords are still served.
	var recorder service.StatsRecorder
	db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, stats disabled", "error", err)
	} else {
		statsRepo := repository.NewStatsRepository(db)
		recorder = statsRepo
		rt.stats = handler.NewStatsHandler(service.NewStatsService(statsRepo))
	}

	genService := service.NewGeneratorService(generator.New(nil), limits, m, recorder)
	rt.generate = handler.NewGeneratorHandler(genService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(rt),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
	err = serve(srv, quit, cfg.ShutdownTimeout)

	if db != nil {
		db.Close()
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		_ = zl.Sync()
		os.Exit(1)
	}

	slog.Info("server stopped")
	_ = zl.Sync()
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it down within timeout.
func serve(srv *http.Server, quit <-chan os.Signal, timeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
