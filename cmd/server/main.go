// Command server runs the activeyear HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/activeyear/server/pkg/api"
	"github.com/activeyear/server/pkg/bootstrap"
	"github.com/activeyear/server/pkg/infrastructure/sentry"
)

func main() {
	logger := bootstrap.NewLogger("activeyear-server")
	cfg := bootstrap.LoadConfig()

	if err := sentry.Init(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
	}, logger); err != nil {
		logger.Error("Sentry init failed", "error", err)
		os.Exit(1)
	}
	defer sentry.Flush(2 * time.Second)

	handler := api.NewHandler(cfg, logger)
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening", "addr", cfg.Addr, "tracked_year", cfg.TrackedYear)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			sentry.CaptureException(err, nil, logger)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
