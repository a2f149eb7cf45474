package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"diamant-rouge-catalog/app"
	"diamant-rouge-catalog/config"
	"diamant-rouge-catalog/logger"
	"diamant-rouge-catalog/models"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	envLoaded := false
	if os.Getenv("ENV") != "production" {
		// Use Overload so .env values override system environment variables
		envLoaded = godotenv.Overload(".env") == nil
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New("diamant-rouge-catalog", cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)
	if envLoaded {
		log.Debug("Loaded environment variables from .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := app.Run(ctx, cfg, log)
	if err != nil {
		log.Error("catalog generation could not start", "error", err)
		stop()
		os.Exit(1)
	}

	printSummary(summary)
}

func printSummary(s *models.RunSummary) {
	fmt.Printf("\nCatalog run %s\n", s.RunID)
	fmt.Printf("  discovered: %d  created: %d  failed: %d  skipped: %d  discarded: %d\n",
		s.Discovered, s.Created, s.Failed, s.Skipped, s.Discarded)
	for _, category := range models.Categories {
		fmt.Printf("  featured %-10s %d\n", category, s.Featured[category])
	}
	if s.Aborted {
		fmt.Println("  run aborted before all assets were processed")
	}
}
