// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating loading phrases.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the phrase service to Google's external Gemini AI service.
// It translates between the provider-neutral generation.Response and the
// Gemini reply types without exposing the details of the external service to
// the core application.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Sends the system instruction and user message in a single request
//   - Bounds every call with the configured timeout
//
// 2. Response Mapping:
//   - Copies candidates and their text parts into generation.Response
//   - Fills the primary text from the first candidate, as the SDK does
//
// 3. Error Handling:
//   - Translates timeouts, safety blocks and empty replies into generation errors
//   - Makes exactly one attempt; callers decide what to do on failure
//
// The package depends on Google's google.golang.org/genai client library
// for communicating with the Gemini API.
package gemini
