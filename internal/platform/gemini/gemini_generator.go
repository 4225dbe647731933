package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/loading-phrases-api/internal/config"
	"github.com/phrazzld/loading-phrases-api/internal/generation"
	"github.com/phrazzld/loading-phrases-api/internal/redact"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models performs the remote GenerateContent call
	models contentGenerator

	// model is the name of the Gemini model to use
	model string

	// timeout bounds a single call
	timeout time.Duration
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and timeout
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails.
//     A missing API key yields generation.ErrMissingAPIKey.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, generation.ErrMissingAPIKey
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"model", cfg.ModelName,
		"timeout", cfg.Timeout.String())

	return newGeminiGenerator(logger, client.Models, cfg.ModelName, cfg.Timeout), nil
}

func newGeminiGenerator(
	logger *slog.Logger,
	models contentGenerator,
	model string,
	timeout time.Duration,
) *GeminiGenerator {
	return &GeminiGenerator{
		logger:  logger,
		models:  models,
		model:   model,
		timeout: timeout,
	}
}

// Generate sends systemInstruction and userMessage to Gemini and maps the reply.
//
// The call runs under a deadline of g.timeout derived from ctx, so a caller
// cancelling ctx abandons the request. Exactly one attempt is made.
func (g *GeminiGenerator) Generate(
	ctx context.Context,
	systemInstruction string,
	userMessage string,
) (*generation.Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: userMessage}},
		},
	}
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"user_message_length", len(userMessage))

	start := time.Now()
	resp, err := g.models.GenerateContent(callCtx, g.model, contents, genConfig)
	elapsed := time.Since(start)
	if err != nil {
		return nil, classifyCallError(ctx, callCtx, err)
	}

	response, err := toResponse(resp)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"model", g.model,
		"duration_ms", elapsed.Milliseconds(),
		"candidates", len(response.Candidates))

	return response, nil
}

// classifyCallError maps a failed GenerateContent call onto the generation
// error taxonomy. parent is the caller's context, call the bounded one.
func classifyCallError(parent, call context.Context, err error) error {
	if parent.Err() == nil && errors.Is(call.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
}

// toResponse converts a Gemini reply into a generation.Response.
//
// Thought parts are dropped. The primary Text is the concatenated text of
// the first candidate's remaining parts, matching what the SDK reports as
// the response text. A reply without any
// candidates is invalid; a reply whose first candidate was stopped by the
// safety filter and carries no text is reported as blocked.
func toResponse(resp *genai.GenerateContentResponse) (*generation.Response, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	out := &generation.Response{
		Candidates: make([]generation.Candidate, 0, len(resp.Candidates)),
	}
	for _, c := range resp.Candidates {
		var candidate generation.Candidate
		if c != nil && c.Content != nil {
			for _, p := range c.Content.Parts {
				if p == nil || p.Thought || p.Text == "" {
					continue
				}
				candidate.Parts = append(candidate.Parts, generation.Part{Text: p.Text})
			}
		}
		out.Candidates = append(out.Candidates, candidate)
	}

	for _, p := range out.Candidates[0].Parts {
		out.Text += p.Text
	}

	first := resp.Candidates[0]
	if out.RawText() == "" && first != nil && first.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, first.FinishReason)
	}

	return out, nil
}
