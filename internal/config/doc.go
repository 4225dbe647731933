// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional config file).
// It provides type-safe access to the settings needed by the server, the
// logger and the Gemini generator while keeping configuration details
// separate from the phrase generation logic.
package config
