// Package config handles configuration loading from environment variables
// and optional env files. It provides a centralized Config struct used by
// every populater command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider and backend names accepted by AI_PROVIDER and STORE_BACKEND.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"

	BackendREST     = "rest"
	BackendPostgres = "postgres"
)

// Config holds all configuration values loaded from the environment.
type Config struct {
	// AI provider settings
	AIProvider    string // "claude" or "openai"
	ClaudeAPIKey  string
	ClaudeModel   string
	ClaudeBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	MaxTokens     int
	Timeout       time.Duration

	// Website store
	StoreBackend string // "rest" or "postgres"
	SupabaseURL  string
	SupabaseKey  string
	DatabaseURL  string
	StoreTimeout time.Duration

	// Optional S3 archive of saved websites
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string

	LogLevel string
}

// MissingError lists every required variable that is unset.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Vars, ", ")
}

// Load reads env files, then configuration from environment variables,
// applying defaults where appropriate. It does not check for required
// values; call Validate or ValidateStore for that.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg := &Config{
		AIProvider:    strings.ToLower(envOrDefault("AI_PROVIDER", ProviderClaude)),
		ClaudeAPIKey:  firstEnv("ANTHROPIC_API_KEY", "CLAUDE_API_KEY"),
		ClaudeModel:   os.Getenv("CLAUDE_MODEL"),
		ClaudeBaseURL: os.Getenv("CLAUDE_BASE_URL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		StoreBackend: strings.ToLower(envOrDefault("STORE_BACKEND", BackendREST)),
		SupabaseURL:  firstEnv("NEXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL"),
		SupabaseKey:  firstEnv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "SUPABASE_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),

		LogLevel: envOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.MaxTokens, err = envInt("AI_MAX_TOKENS", 4000); err != nil {
		return nil, err
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("AI_MAX_TOKENS must be positive, got %d", cfg.MaxTokens)
	}
	if cfg.Timeout, err = envDuration("AI_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.StoreTimeout, err = envDuration("STORE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks everything a populater run needs: an API key for the
// selected provider and the settings of the selected store backend.
func (c *Config) Validate() error {
	return c.check(true)
}

// ValidateStore checks only the store backend settings.
func (c *Config) ValidateStore() error {
	return c.check(false)
}

func (c *Config) check(needAI bool) error {
	var missing []string

	if needAI {
		switch c.AIProvider {
		case ProviderClaude:
			if c.ClaudeAPIKey == "" {
				missing = append(missing, "ANTHROPIC_API_KEY")
			}
		case ProviderOpenAI:
			if c.OpenAIAPIKey == "" {
				missing = append(missing, "OPENAI_API_KEY")
			}
		default:
			return fmt.Errorf("unknown AI_PROVIDER %q (want %s or %s)", c.AIProvider, ProviderClaude, ProviderOpenAI)
		}
	}

	switch c.StoreBackend {
	case BackendREST:
		if c.SupabaseURL == "" {
			missing = append(missing, "NEXT_PUBLIC_SUPABASE_URL")
		}
		if c.SupabaseKey == "" {
			missing = append(missing, "NEXT_PUBLIC_SUPABASE_ANON_KEY")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want %s or %s)", c.StoreBackend, BackendREST, BackendPostgres)
	}

	if len(missing) > 0 {
		return &MissingError{Vars: missing}
	}
	return nil
}

// ValidateArchive checks the settings of the S3 archive.
func (c *Config) ValidateArchive() error {
	var missing []string
	for _, v := range []struct{ name, value string }{
		{"S3_ENDPOINT", c.S3Endpoint},
		{"S3_ACCESS_KEY", c.S3AccessKey},
		{"S3_SECRET_KEY", c.S3SecretKey},
		{"S3_BUCKET", c.S3Bucket},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Vars: missing}
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// loadEnvFiles loads ENV_FILE if set, otherwise .env.local then .env.
// Missing files are ignored and variables already set are kept.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
