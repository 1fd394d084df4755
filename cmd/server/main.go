package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmanager/config"
	delivery "eventmanager/internal/delivery/http"
	"eventmanager/internal/delivery/http/middleware"
	"eventmanager/internal/graph"
	"eventmanager/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	st := store.New()
	if cfg.SeedData {
		st.Seed()
		logger.Info("store seeded with sample data")
	}

	resolver := graph.NewResolver(logger, st)
	schema := graph.MustSchema(resolver)

	mux := delivery.NewRouter(cfg, schema)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("shutdown complete")
}
