package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	envKeys := []string{
		"HOST", "PORT", "ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"SUPABASE_JWT_SECRET", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_MAX_TOKENS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"SUPABASE_JWT_SECRET": "secret",
				"ANTHROPIC_API_KEY":   "sk-test",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "0.0.0.0", cfg.Host)
				assert.Equal(t, 3001, cfg.Port)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.Equal(t, 4096, cfg.MaxTokens)
				assert.Equal(t, "0.0.0.0:3001", cfg.Addr())
			},
		},
		{
			name: "multiple allowed origins",
			envVars: map[string]string{
				"SUPABASE_JWT_SECRET": "secret",
				"ANTHROPIC_API_KEY":   "sk-test",
				"ALLOWED_ORIGINS":     "https://app.example.com, https://staging.example.com",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t,
					[]string{"https://app.example.com", "https://staging.example.com"},
					cfg.AllowedOrigins)
			},
		},
		{
			name: "missing JWT secret",
			envVars: map[string]string{
				"ANTHROPIC_API_KEY": "sk-test",
			},
			wantErr:     true,
			errContains: "SUPABASE_JWT_SECRET is required",
		},
		{
			name: "missing API key",
			envVars: map[string]string{
				"SUPABASE_JWT_SECRET": "secret",
			},
			wantErr:     true,
			errContains: "ANTHROPIC_API_KEY is required",
		},
		{
			name: "invalid port",
			envVars: map[string]string{
				"SUPABASE_JWT_SECRET": "secret",
				"ANTHROPIC_API_KEY":   "sk-test",
				"PORT":                "not_a_port",
			},
			wantErr:     true,
			errContains: "invalid PORT",
		},
		{
			name: "invalid max tokens",
			envVars: map[string]string{
				"SUPABASE_JWT_SECRET":  "secret",
				"ANTHROPIC_API_KEY":    "sk-test",
				"ANTHROPIC_MAX_TOKENS": "zero",
			},
			wantErr:     true,
			errContains: "invalid ANTHROPIC_MAX_TOKENS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
