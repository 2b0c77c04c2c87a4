package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Tracing  TracingConfig  `mapstructure:"tracing"  validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists the origins allowed to call the API from a browser.
	// A single "*" allows any origin.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	BCryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=4,lte=31"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"gtfield=TokenLifetimeMinutes"`
}

// LLMConfig selects and configures the language model provider used for
// learning content generation.
type LLMConfig struct {
	// Provider is one of "openai", "gemini" or "anthropic".
	Provider  string `mapstructure:"provider"   validate:"required,oneof=openai gemini anthropic"`
	APIKey    string `mapstructure:"api_key"    validate:"required"`
	ModelName string `mapstructure:"model_name" validate:"required"`
	// BaseURL overrides the provider endpoint, mostly for proxies and tests.
	BaseURL           string `mapstructure:"base_url"            validate:"omitempty,url"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"     validate:"gt=0"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=5"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// TracingConfig controls OpenTelemetry trace export.
type TracingConfig struct {
	Exporter    string `mapstructure:"exporter"     validate:"required,oneof=none stdout otlp"`
	Endpoint    string `mapstructure:"endpoint"     validate:"required_if=Exporter otlp"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
	// Insecure disables TLS for the OTLP exporter.
	Insecure bool `mapstructure:"insecure"`
}
