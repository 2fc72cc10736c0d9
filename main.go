package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techoutlet/storefront-api/internal/app/service"
	"github.com/techoutlet/storefront-api/internal/infrastructure/blobstore"
	"github.com/techoutlet/storefront-api/internal/infrastructure/catalog"
	"github.com/techoutlet/storefront-api/internal/infrastructure/config"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http"
	"github.com/techoutlet/storefront-api/internal/infrastructure/http/handler"
	"github.com/techoutlet/storefront-api/internal/infrastructure/repository/localstore"
	"github.com/techoutlet/storefront-api/internal/infrastructure/telemetry"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize OpenTelemetry
	telem, err := telemetry.NewTelemetry(&cfg.OTLP)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ensure telemetry is shutdown on exit
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer("storefront-api")
	meter := telem.MeterProvider.Meter("storefront-api")
	logger := telem.Logger

	logger.Info("Starting Storefront API")

	// Persistent storage for the cart and order history blobs
	store, err := blobstore.New(cfg.Store.DataDir, logger)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	// Product catalog: configured file or the embedded demo catalog,
	// hot-reloaded on change
	catalogRepo, err := catalog.NewRepository(cfg.Store.CatalogPath, tracer, logger)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if err := catalogRepo.Watch(ctx); err != nil {
		logger.Warn("Catalog watching disabled", "error", err.Error())
	}

	// Repositories
	cartStore := localstore.NewCartStore(store, tracer, logger)
	orderRepo := localstore.NewOrderRepository(store, tracer, logger)

	// Services
	catalogService := service.NewCatalogService(catalogRepo, tracer, meter, logger)
	cartService := service.NewCartService(cartStore, catalogRepo, tracer, meter, logger)
	checkoutService := service.NewCheckoutService(
		cartStore, orderRepo, cfg.Checkout.ProcessingDelay, nil, tracer, meter, logger,
	)
	contactService := service.NewContactService(nil, tracer, meter, logger)

	// Handlers
	handlers := http.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Contact:  handler.NewContactHandler(contactService, logger),
	}

	// Initialize HTTP server
	server := http.NewServer(&cfg.Server, handlers, logger, telem)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", "error", err.Error())
			cancel()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	logger.Info("Server stopped")
}
