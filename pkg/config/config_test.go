package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindstash/mindstash/internal/shared/domain"
)

func TestLoad_MissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("MINDSTASH_API_KEY", "")

	_, err := Load()
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "MINDSTASH_API_KEY", cfgErr.Key)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MINDSTASH_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "file", cfg.StorageBackend)
	require.Equal(t, "gpt-4o-mini", cfg.Model)
	require.Equal(t, 500, cfg.MaxTokens)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MINDSTASH_API_KEY", "sk-test")
	t.Setenv("MINDSTASH_STORAGE", "sqlite")
	t.Setenv("MINDSTASH_MAX_TOKENS", "800")
	t.Setenv("MINDSTASH_MODEL", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.StorageBackend)
	require.Equal(t, 800, cfg.MaxTokens)
	require.Equal(t, "gpt-4o", cfg.Model)
}
