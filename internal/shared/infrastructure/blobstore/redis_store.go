package blobstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps blobs in Redis. Keys are namespaced as
// mindstash:blob:{key} so a shared instance stays tidy.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using the given URL.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) namespaceKey(key string) string {
	return fmt.Sprintf("mindstash:blob:%s", key)
}

// Save stores the blob without expiration.
func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, s.namespaceKey(key), data, 0).Err()
}

// Load returns the blob under key, or ErrNoBlob.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.namespaceKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Clear removes the blob under key.
func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.namespaceKey(key)).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
