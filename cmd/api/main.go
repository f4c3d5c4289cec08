package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"medimart/internal/catalog"
	"medimart/internal/config"
	"medimart/internal/database"
	"medimart/internal/handler"
	"medimart/internal/notification"
	"medimart/internal/repository"
	"medimart/internal/router"
	"medimart/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting medimart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	storeRepo := repository.NewStoreRepository(pool, logger)
	inventoryRepo := repository.NewInventoryRepository(pool, logger)
	medicineRepo := repository.NewMedicineRepository(pool, logger)
	doctorRepo := repository.NewDoctorRepository(pool, logger)
	consultRepo := repository.NewConsultationRepository(pool, logger)

	// Import the medicine catalog at startup if configured
	if cfg.Catalog.Enabled {
		loader := newCatalogLoader(ctx, cfg.Catalog, logger)
		importer := catalog.NewImporter(loader, medicineRepo, logger)
		count, err := importer.ImportDir(ctx, cfg.Catalog.LocalDir)
		if err != nil {
			return fmt.Errorf("failed to import medicine catalog: %w", err)
		}
		logger.Info().Int("count", count).Msg("medicine catalog import finished")
	}

	// Initialize notification sender
	sender := notification.NewLogSender(logger)

	// Initialize services
	orderService := service.NewOrderService(orderRepo, cartRepo, sender, logger)
	cartService := service.NewCartService(cartRepo, medicineRepo, logger)
	storeService := service.NewStoreService(storeRepo, inventoryRepo, medicineRepo, logger)
	medicineService := service.NewMedicineService(medicineRepo, logger)
	consultService := service.NewConsultationService(consultRepo, doctorRepo, sender, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Order:        handler.NewOrderHandler(orderService, logger),
		Cart:         handler.NewCartHandler(cartService, logger),
		Store:        handler.NewStoreHandler(storeService, logger),
		Medicine:     handler.NewMedicineHandler(medicineService, logger),
		Consultation: handler.NewConsultationHandler(consultService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.JWTSecret, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newCatalogLoader builds the catalog loader chain: S3 with local
// fallback when S3 is enabled, local file system only otherwise.
func newCatalogLoader(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)

	if !cfg.S3Enabled {
		logger.Info().Msg("using local file system for catalog files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Prefix, true, logger)
}
