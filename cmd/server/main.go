// Package main implements the entry point for the loading phrases API server,
// which generates short themed loading phrases for the time-travel explorer
// through Google's Gemini API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/loading-phrases-api/internal/config"
	"github.com/phrazzld/loading-phrases-api/internal/platform/logger"
)

// main is the entry point for the server. It loads configuration, sets up
// logging, wires the generator and phrase service, and runs the HTTP server
// until it receives SIGINT or SIGTERM.
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the logger, and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"llm_timeout", cfg.LLM.Timeout.String())
	appLogger.Debug("LLM configuration", "api_key_present", cfg.LLM.HasAPIKey())

	return cfg, appLogger, nil
}
