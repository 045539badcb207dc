// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the promptpress API server.
// It loads configuration, wires the selected storage backend, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptpress/internal/cache"
	"promptpress/internal/config"
	"promptpress/internal/database"
	"promptpress/internal/gateway"
	"promptpress/internal/handlers"
	"promptpress/internal/middleware"
	"promptpress/internal/router"
	"promptpress/internal/store"
	"promptpress/internal/store/file"
	"promptpress/internal/store/postgres"
)

func main() {
	// Structured logger — text output, debug level in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.Backend,
		"preview", cfg.Preview,
	)

	// Connect to Valkey (view cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	views := cache.NewViewCache(valkeyClient, cache.DefaultViewTTL)

	// Wire the selected storage backend.
	var (
		catalog store.TemplateStore
		saved   store.SavedPromptStore
	)

	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		// Run pending migrations.
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// Seed starter templates in development (no-op if data exists).
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}

		catalog = postgres.NewTemplateStore(db)
		saved = postgres.NewSavedPromptStore(db)

	case config.BackendFile:
		catalog = file.NewTemplateStore(cfg.TemplatesDir)

		fileSaved, err := file.NewSavedPromptStore(cfg.SavedDir)
		if err != nil {
			slog.Error("failed to init saved-prompt store", "error", err)
			os.Exit(1)
		}
		saved = fileSaved

		// Invalidate cached template views when catalog files change on disk.
		watcher, err := file.WatchTemplates(cfg.TemplatesDir, func() {
			views.InvalidateTemplateViews(context.Background())
		})
		if err != nil {
			slog.Warn("template catalog watcher disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	// Preview deployments accept mutations but never apply them.
	if cfg.Preview {
		saved = store.NewPreviewGuard(saved)
	}

	// The gateway ties every successful mutation to view invalidation.
	gw := gateway.New(saved, views)

	// Create handler groups with their dependencies.
	templateHandlers := handlers.NewTemplates(catalog, views)
	promptHandlers := handlers.NewPrompts(saved, gw, views)

	// Rate-limit mutations: 60 writes per minute per client IP.
	limiter := middleware.NewRateLimiter(60, time.Minute)
	defer limiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(templateHandlers, promptHandlers, limiter)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
