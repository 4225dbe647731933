package api

import (
	"errors"

	"github.com/phrazzld/loading-phrases-api/internal/phrases"
)

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, phrases.ErrGeneratorNotConfigured):
		return "GEMINI_API_KEY not configured"
	default:
		return "An unexpected error occurred"
	}
}
