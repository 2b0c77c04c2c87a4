package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "ELEARN"

// providerKeyEnv names the conventional API key variable of each provider.
var providerKeyEnv = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
}

// Load reads configuration from defaults, an optional config.yaml in the working
// directory and ELEARN_* environment variables, in increasing order of precedence.
// When no key is configured, the API key falls back to the conventional
// variable of the selected provider (see providerKeyEnv).
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to Unmarshal unless bound explicitly.
	bindings := map[string][]string{
		"database.url":     {EnvPrefix + "_DATABASE_URL", "DATABASE_URL"},
		"auth.jwt_secret":  {EnvPrefix + "_AUTH_JWT_SECRET"},
		"llm.api_key":      {EnvPrefix + "_LLM_API_KEY"},
		"llm.base_url":     {EnvPrefix + "_LLM_BASE_URL"},
		"tracing.endpoint": {EnvPrefix + "_TRACING_ENDPOINT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if v.GetString("llm.api_key") == "" {
		if name, ok := providerKeyEnv[v.GetString("llm.provider")]; ok {
			if key := os.Getenv(name); key != "" {
				v.Set("llm.api_key", key)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 10080)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model_name", "gpt-3.5-turbo")
	v.SetDefault("llm.timeout_seconds", 30)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.retry_delay_seconds", 1)

	v.SetDefault("tracing.exporter", "none")
	v.SetDefault("tracing.service_name", "elearn-api")
	v.SetDefault("tracing.insecure", false)
}
