package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mindstash/mindstash/internal/shared/domain"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	Timezone string

	// Oracle
	APIKey     string
	APIBaseURL string
	Model      string
	MaxTokens  int

	// Storage
	StorageBackend string
	DataDir        string
	SQLitePath     string
	RedisURL       string
	DatabaseURL    string
}

// Load loads configuration from environment variables. A missing API key
// is a fatal configuration error: the oracle client cannot be constructed
// without it.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("MINDSTASH_TIMEZONE", ""),

		APIKey:     getEnv("MINDSTASH_API_KEY", ""),
		APIBaseURL: getEnv("MINDSTASH_API_URL", "https://api.openai.com/v1/chat/completions"),
		Model:      getEnv("MINDSTASH_MODEL", "gpt-4o-mini"),
		MaxTokens:  getIntEnv("MINDSTASH_MAX_TOKENS", 500),

		StorageBackend: getEnv("MINDSTASH_STORAGE", "file"),
		DataDir:        getEnv("MINDSTASH_DATA_DIR", getDefaultDataDir()),
		SQLitePath:     getEnv("MINDSTASH_SQLITE_PATH", ""),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
	}

	if cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Key: "MINDSTASH_API_KEY"}
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindstash"
	}
	return home + "/.mindstash"
}
