package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fartgen-backend/infrastructure/config"
	"fartgen-backend/infrastructure/storage"
	"fartgen-backend/interfaces/http/rest"
)

// reloadExitCode tells a dev supervisor the process wants a restart after
// the override file changed.
const reloadExitCode = 3

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration; a misconfigured process must die before it binds.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Construct the object store client up front so credential or endpoint
	// mistakes surface at startup, not on the first upload.
	store, err := storage.NewObjectStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to configure object storage", zap.Error(err))
	}
	logger.Info("Object storage configured",
		zap.String("bucket", store.Bucket),
		zap.String("region", cfg.S3.Region),
	)

	handler := rest.NewRouter(cfg, logger).Setup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.Environment),
			zap.Bool("debug", cfg.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Debug builds restart when the override file changes; production never
	// watches anything.
	reloadCh := make(chan struct{}, 1)
	if cfg.Debug {
		watcher, err := config.NewWatcher(config.DefaultEnvFile, func() {
			select {
			case reloadCh <- struct{}{}:
			default:
			}
		}, logger)
		if err != nil {
			logger.Warn("Live reload unavailable", zap.Error(err))
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case <-sigChan:
		logger.Info("Shutting down server...")
	case <-reloadCh:
		logger.Info("Override file changed, restarting...")
		exitCode = reloadExitCode
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	return exitCode
}

// newLogger builds the process logger for the configured environment.
func newLogger(cfg *config.Settings) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
