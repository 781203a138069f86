package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alkime/creatoros/internal/generation"
	"github.com/alkime/creatoros/internal/keyring"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
	// EnvDevelopment represents the development environment.
	EnvDevelopment = "development"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Security settings
	HSTSMaxAge         int      `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode            string   `envconfig:"CSP_MODE" default:"relaxed"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Storage settings
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"true"`

	// Generation settings
	GenerationProvider  string        `envconfig:"GENERATION_PROVIDER" default:"openai"`
	GenerationModel     string        `envconfig:"GENERATION_MODEL"`
	GenerationTimeout   time.Duration `envconfig:"GENERATION_TIMEOUT" default:"2m"`
	GenerationMaxTokens int64         `envconfig:"GENERATION_MAX_TOKENS" default:"4096"`
	OpenAIAPIKey        string        `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey     string        `envconfig:"ANTHROPIC_API_KEY"`
	GeminiAPIKey        string        `envconfig:"GEMINI_API_KEY"`

	// Web settings
	StaticDir      string `envconfig:"STATIC_DIR"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// Provider returns the configured generation provider.
func (c *Config) Provider() generation.Provider {
	return generation.Provider(strings.ToLower(strings.TrimSpace(c.GenerationProvider)))
}

// Model returns the configured model, or the provider default when unset.
func (c *Config) Model() string {
	if c.GenerationModel != "" {
		return c.GenerationModel
	}

	return generation.DefaultModel(c.Provider())
}

// APIKey returns the key for the configured provider. Environment variables
// take priority; the system keychain is the fallback.
func (c *Config) APIKey() string {
	var (
		value string
		entry keyring.APIKey
	)

	switch c.Provider() {
	case generation.ProviderAnthropic:
		value, entry = c.AnthropicAPIKey, keyring.Anthropic
	case generation.ProviderGemini:
		value, entry = c.GeminiAPIKey, keyring.Gemini
	default:
		value, entry = c.OpenAIAPIKey, keyring.OpenAI
	}

	if value != "" {
		return value
	}

	secret, err := keyring.Get(entry)
	if err != nil {
		slog.Debug("keychain lookup failed", "key", entry.DisplayName(), "error", err)
		return ""
	}

	return secret
}

// Generation returns the generation client settings.
func (c *Config) Generation() generation.Config {
	return generation.Config{
		Provider:  c.Provider(),
		APIKey:    c.APIKey(),
		Model:     c.Model(),
		MaxTokens: c.GenerationMaxTokens,
		Timeout:   c.GenerationTimeout,
	}
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"img-src 'self' data:; " +
			"connect-src 'self'; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:"
}
