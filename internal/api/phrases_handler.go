package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/loading-phrases-api/internal/api/shared"
	"github.com/phrazzld/loading-phrases-api/internal/phrases"
	"github.com/phrazzld/loading-phrases-api/internal/platform/logger"
)

// PhrasesSourceHeader tells clients whether phrases were generated or canned.
const PhrasesSourceHeader = "X-Phrases-Source"

// PhraseService is the subset of phrases.Service used by PhrasesHandler.
type PhraseService interface {
	Generate(ctx context.Context, req phrases.Request) (phrases.Result, error)
}

// PhrasesHandler handles loading phrase HTTP requests
type PhrasesHandler struct {
	service PhraseService
}

// NewPhrasesHandler creates a new PhrasesHandler
func NewPhrasesHandler(service PhraseService) *PhrasesHandler {
	return &PhrasesHandler{
		service: service,
	}
}

// GenerateLoadingPhrases handles POST /api/loading/phrases requests.
//
// Once the request is valid it answers 200 whenever the generator is
// configured, with fallback phrases if generation failed. A missing
// generator is the only 500.
func (h *PhrasesHandler) GenerateLoadingPhrases(w http.ResponseWriter, r *http.Request) {
	var req LoadingPhrasesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.FormatValidationError(err), err)
		return
	}

	result, err := h.service.Generate(r.Context(), req.toServiceRequest())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, GetSafeErrorMessage(err), err)
		return
	}

	logger.FromContext(r.Context()).DebugContext(r.Context(), "loading phrases served",
		"source", string(result.Source),
		"count", len(result.Phrases))

	w.Header().Set(PhrasesSourceHeader, string(result.Source))
	shared.RespondWithJSON(w, r, http.StatusOK, LoadingPhrasesResponse{Phrases: result.Phrases})
}
