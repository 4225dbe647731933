package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the remote call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the LLM response is missing or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTimeout is returned when the remote call does not complete within its deadline
	ErrTimeout = errors.New("language model call timed out")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrMissingAPIKey is returned when no credential is available for the remote service
	ErrMissingAPIKey = errors.New("language model API key not configured")
)
