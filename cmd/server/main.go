package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	activityhandler "mergington/internal/activity/handler"
	"mergington/internal/activity/models"
	"mergington/internal/activity/service"
	"mergington/internal/activity/store"
	"mergington/internal/platform/config"
	"mergington/internal/platform/health"
	"mergington/internal/platform/httpserver"
	"mergington/internal/platform/logger"
	"mergington/internal/platform/metrics"
	httptransport "mergington/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)

	log.Info("initializing activities service",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	m := metrics.New()
	registry := store.NewInMemory(models.Seed())
	activities := service.New(registry, log, service.WithMetrics(m))
	handler := activityhandler.New(activities, log, m)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("registry", func() error {
		seeded, err := registry.List(context.Background())
		if err != nil {
			return err
		}
		if len(seeded) == 0 {
			return fmt.Errorf("activity registry is empty")
		}
		return nil
	})

	router := httptransport.NewRouter(handler, healthHandler, log, cfg.RequestTimeout)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
