package phrases

import (
	"context"
	"log/slog"

	"github.com/phrazzld/loading-phrases-api/internal/generation"
	"github.com/phrazzld/loading-phrases-api/internal/platform/logger"
	"github.com/phrazzld/loading-phrases-api/internal/redact"
)

// Request is the journey context phrases are generated for.
type Request struct {
	Location string
	// Year is negative for BCE.
	Year int
	Era  string
	Lat  *float64
	Lng  *float64
	// Count is clamped with ClampCount before use.
	Count int
}

// HasCoordinates reports whether both latitude and longitude are set.
func (r Request) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

// Source tells where a Result's phrases came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Result is the outcome of Service.Generate.
type Result struct {
	Phrases []string
	Source  Source
}

// Service produces loading phrases through a generation.Generator.
type Service struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewService creates a Service. A nil generator is allowed and makes every
// Generate call return ErrGeneratorNotConfigured.
func NewService(generator generation.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		generator: generator,
		logger:    logger,
	}
}

// Configured reports whether the service can reach a generator.
func (s *Service) Configured() bool {
	return s.generator != nil
}

// Generate returns phrases for req. Any failure after configuration is
// checked is absorbed: the fallback list is returned with SourceFallback.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if s.generator == nil {
		return Result{}, ErrGeneratorNotConfigured
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	count := ClampCount(req.Count)
	prompt := BuildPrompt(req)

	resp, err := s.generator.Generate(ctx, prompt.System, prompt.User)
	if err != nil {
		log.WarnContext(ctx, "loading phrase generation failed, using fallback",
			"error", redact.Error(err),
			"location", req.Location,
			"year", req.Year)
		return fallback(req), nil
	}

	raw := resp.RawText()
	phrases, err := ParsePhrases(raw, count)
	if err != nil {
		log.WarnContext(ctx, "unusable loading phrases from model, using fallback",
			"error", err,
			"raw_length", len(raw),
			"location", req.Location,
			"year", req.Year)
		return fallback(req), nil
	}

	log.DebugContext(ctx, "loading phrases generated",
		"count", len(phrases),
		"requested", count)

	return Result{Phrases: phrases, Source: SourceGenerated}, nil
}

func fallback(req Request) Result {
	return Result{Phrases: FallbackPhrases(req.Location), Source: SourceFallback}
}
