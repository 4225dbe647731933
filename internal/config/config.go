package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the origins permitted by CORS. "*" allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is optional at start-up. Without it the phrases endpoint
	// answers 500 instead of calling the model.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is the Gemini model used for phrase generation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// Timeout bounds a single generation call.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// HasAPIKey reports whether a Gemini credential was supplied.
func (c LLMConfig) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}
