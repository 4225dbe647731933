package phrases

import "errors"

var (
	// ErrGeneratorNotConfigured is returned when the service has no generator,
	// which happens when no API key was configured.
	ErrGeneratorNotConfigured = errors.New("phrase generator not configured")

	// ErrUnparsableOutput is returned when model output is not a non-empty JSON array.
	ErrUnparsableOutput = errors.New("model output is not a JSON array of phrases")

	// ErrEmptyAfterSanitization is returned when no element survives sanitization.
	ErrEmptyAfterSanitization = errors.New("no usable phrases after sanitization")
)
