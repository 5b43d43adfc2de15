// Package main is the entry point for the Nexus Commerce API server.
// It loads configuration, opens the persistence backend, wires the handler
// groups, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexuscommerce/internal/blob"
	"nexuscommerce/internal/cache"
	"nexuscommerce/internal/catalog"
	"nexuscommerce/internal/config"
	"nexuscommerce/internal/database"
	"nexuscommerce/internal/handlers"
	"nexuscommerce/internal/router"
	"nexuscommerce/internal/store"
)

func main() {
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
		"store_driver", cfg.StoreDriver,
	)

	// Open the blob backend the whole store document lives in.
	backend, err := openBackend(cfg)
	if err != nil {
		slog.Error("failed to open store backend", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	db := database.Open(backend)
	defer db.Close()

	// Seed development data (no-op if the store already exists).
	if cfg.IsDev() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.Seed(ctx, db, cfg.SeedFile); err != nil {
			slog.Error("failed to seed store", "error", err)
			cancel()
			os.Exit(1)
		}
		cancel()
	}

	// Initialize data stores over the shared document.
	productStore := store.NewProductStore(db)
	categoryStore := store.NewCategoryStore(db)
	orderStore := store.NewOrderStore(db)
	reviewStore := store.NewReviewStore(db)
	articleStore := store.NewArticleStore(db)
	userStore := store.NewUserStore(db)
	settingStore := store.NewSettingStore(db)

	// Listing cache in Valkey is optional — the catalog works without it.
	// When the store itself lives in Valkey, reuse that connection.
	var listings *cache.ListingCache
	if valkeyBackend, ok := backend.(*blob.Valkey); ok {
		listings = cache.NewListingCache(valkeyBackend.Client(), cache.DefaultListingTTL)
	} else if cfg.ValkeyHost != "" && os.Getenv("LISTING_CACHE") == "enabled" {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("listing cache disabled, valkey unreachable", "error", err)
		} else {
			defer client.Close()
			listings = cache.NewListingCache(client, cache.DefaultListingTTL)
		}
	}

	// Catalog client simulating the upstream marketplace feed.
	catalogClient := catalog.New(cfg.CatalogLatency)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(productStore, categoryStore, orderStore, reviewStore, articleStore, userStore, settingStore)
	frontHandlers := handlers.NewStorefront(catalogClient, listings, orderStore)

	// Set up the Chi router with all middleware and routes.
	r, stopLimiter := router.New(adminHandlers, frontHandlers)
	defer stopLimiter()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// openBackend constructs the configured blob store.
func openBackend(cfg *config.Config) (blob.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return blob.NewMemory(), nil
	case config.DriverFile:
		return blob.NewFile(cfg.StorePath())
	case config.DriverValkey:
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, err
		}
		return blob.NewValkey(client), nil
	case config.DriverPostgres:
		return blob.OpenPostgres(cfg.DSN())
	}
	// config.Load already validated the driver.
	return blob.NewMemory(), nil
}
