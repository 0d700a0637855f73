package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zrxdaly/funda-scraper-web/config"
	"github.com/zrxdaly/funda-scraper-web/helpers"
	"github.com/zrxdaly/funda-scraper-web/internal/scraper"
	"github.com/zrxdaly/funda-scraper-web/logger"
	"github.com/zrxdaly/funda-scraper-web/services/session"
	"github.com/zrxdaly/funda-scraper-web/services/web"
	"github.com/zrxdaly/funda-scraper-web/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	helpers.SetTimeout(cfg.RequestTimeout)

	log.Info().
		Str("environment", cfg.Environment).
		Str("listen_addr", cfg.ListenAddr).
		Dur("request_timeout", cfg.RequestTimeout).
		Dur("request_delay", cfg.RequestDelay).
		Msg("Starting application")

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wire the services: one session, one sequential worker, one web front
	sess := session.New(cfg)
	w := worker.NewWorker(scraper.NewScraper(), cfg.RequestDelay)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: web.NewServer(sess, w),
	}

	serverDone := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("Web UI listening")
		serverDone <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
	case err := <-serverDone:
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server exited with error")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Forced shutdown")
	}
}
