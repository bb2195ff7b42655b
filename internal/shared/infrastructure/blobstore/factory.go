package blobstore

import (
	"context"
	"fmt"
	"path/filepath"
)

// Backend identifies a blob store implementation.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// Config selects and configures a backend.
type Config struct {
	Backend     Backend
	DataDir     string
	SQLitePath  string
	RedisURL    string
	DatabaseURL string
}

// New builds the store the config asks for. An unknown backend is a
// construction error, not a silent fallback.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStore(cfg.DataDir)
	case BackendSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = filepath.Join(cfg.DataDir, "mindstash.db")
		}
		return NewSQLiteStore(ctx, path)
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL)
	case BackendPostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown blob store backend: %s", cfg.Backend)
	}
}
