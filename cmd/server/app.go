package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/loading-phrases-api/internal/config"
	"github.com/phrazzld/loading-phrases-api/internal/generation"
	"github.com/phrazzld/loading-phrases-api/internal/phrases"
	"github.com/phrazzld/loading-phrases-api/internal/platform/gemini"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	phraseService *phrases.Service
}

// newApplication wires the Gemini generator into the phrase service.
//
// A missing API key is not fatal: the server starts, logs a warning, and the
// phrases endpoint answers 500 until a key is configured. Any other generator
// setup failure is returned.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	var generator generation.Generator
	g, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	switch {
	case errors.Is(err, generation.ErrMissingAPIKey):
		logger.Warn("GEMINI_API_KEY not configured, loading phrases endpoint will return 500")
	case err != nil:
		return nil, fmt.Errorf("failed to initialize Gemini generator: %w", err)
	default:
		generator = g
	}

	return newApplicationWithGenerator(cfg, logger, generator), nil
}

// newApplicationWithGenerator builds an application around an existing
// generator, which may be nil.
func newApplicationWithGenerator(cfg *config.Config, logger *slog.Logger, generator generation.Generator) *application {
	return &application{
		config:        cfg,
		logger:        logger,
		phraseService: phrases.NewService(generator, logger),
	}
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
