package config

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
}

// LLMConfig contains all settings for the generation provider integration.
type LLMConfig struct {
	// GeminiAPIKey authenticates requests to the provider. It is sent as a
	// URL query parameter and must never appear in logs or responses.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// BaseURL is the provider endpoint root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// ModelName selects the model, e.g. "gemini-pro".
	ModelName string `mapstructure:"model_name" validate:"required"`

	// TimeoutSeconds bounds a single generation call end to end. Model
	// calls are slow, so the default is deliberately generous.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`

	// GenerationConfig is passed through to the provider verbatim when set.
	// Nil means the field is omitted from the request entirely.
	GenerationConfig map[string]any `mapstructure:"generation_config"`

	// SafetySettings is passed through to the provider verbatim when set.
	// Nil means the field is omitted from the request entirely.
	SafetySettings []map[string]any `mapstructure:"safety_settings"`
}
