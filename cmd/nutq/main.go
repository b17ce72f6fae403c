// Package main is the entry point for the nutq board server. It loads
// configuration, connects the catalog store, builds the board session,
// sets up routing, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutq/internal/board"
	"nutq/internal/catalog"
	"nutq/internal/config"
	"nutq/internal/handlers"
	"nutq/internal/kv"
	"nutq/internal/media"
	"nutq/internal/router"
	"nutq/internal/session"
)

func main() {
	// Structured logger — text output, debug level.
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
		"store", cfg.StoreDriver,
	)

	// Connect to Valkey. Caregiver sessions always live here; the catalog
	// blob does too when the valkey driver is selected.
	valkeyClient, err := kv.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Pick the catalog blob store.
	var store kv.Store
	switch cfg.StoreDriver {
	case config.DriverValkey:
		store = kv.NewValkeyStore(valkeyClient)
	case config.DriverPostgres:
		db, err := kv.ConnectPostgres(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := kv.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		store = kv.NewPostgresStore(db)
	case config.DriverMemory:
		store = kv.NewMemoryStore()
	}

	// Session store backed by Valkey. Outside development, cookies are
	// marked Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Connect to S3-compatible object storage (optional — the board works
	// without it, uploads just return 503).
	storageClient, err := media.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("object storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("object storage not configured — media uploads disabled")
	}

	// Build and load the board session. First launch seeds the starter
	// catalog; a corrupt blob is re-seeded when configured.
	boardSession := board.New(
		catalog.NewRepository(store),
		board.WithCorruptRecovery(cfg.StoreRecoverCorrupt),
	)
	defer boardSession.Close()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelInit()
	if err := boardSession.Initialize(initCtx); err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded")

	// Create handler groups with their dependencies.
	boardHandlers := handlers.NewBoard(boardSession)
	adminHandlers := handlers.NewAdmin(boardSession, storageClient)
	authHandlers, err := handlers.NewAuth(sessionStore, cfg.CaregiverPasscode)
	if err != nil {
		slog.Error("failed to initialize auth", "error", err)
		os.Exit(1)
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, boardHandlers, adminHandlers, authHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts. Uploads are the
	// slowest requests; everything else is an in-memory mutation.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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
