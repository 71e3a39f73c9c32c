// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds server, auth and model provider settings. Database settings
// live in pkg/database and are loaded separately.
type Config struct {
	// HTTP server
	Host            string
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// Supabase JWT verification
	JWTSecret string

	// Model provider
	AnthropicAPIKey string
	Model           string
	MaxTokens       int
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables. Call
// godotenv.Load before this to pick up a local .env file.
func LoadFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "3001"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}

	maxTokens, err := strconv.Atoi(getEnvOrDefault("ANTHROPIC_MAX_TOKENS", "4096"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ANTHROPIC_MAX_TOKENS: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := Config{
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		Port:            port,
		AllowedOrigins:  splitAndTrim(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		ShutdownTimeout: shutdownTimeout,
		JWTSecret:       os.Getenv("SUPABASE_JWT_SECRET"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:           getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		MaxTokens:       maxTokens,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
