// Package main is the entry point for the holiday API server.
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

	"github.com/jsykora/holiday-api/internal/api"
	"github.com/jsykora/holiday-api/internal/calendar"
	"github.com/jsykora/holiday-api/internal/config"
	"github.com/jsykora/holiday-api/internal/dataset"
	"github.com/jsykora/holiday-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting holiday API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	// Load the calendar dataset: embedded by default, from disk when
	// DATASET_PATH is set.
	var cal *dataset.Calendar
	if cfg.DatasetPath != "" {
		cal, err = dataset.LoadFile(cfg.DatasetPath)
	} else {
		cal, err = dataset.Load()
	}
	if err != nil {
		log.Error("failed to load dataset", slog.Any("error", err))
		os.Exit(1)
	}

	resolver := calendar.New(cal)
	handlers := api.NewHandlers(resolver, cfg, log)
	router := api.SetupRoutes(handlers, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("holiday API ready", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown error", slog.Any("error", err))
			os.Exit(1)
		}
	}

	log.Info("holiday API stopped")
}
