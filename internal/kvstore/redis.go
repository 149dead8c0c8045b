package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by a redis database, with all keys under a
// configurable prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a redis-backed store from configuration.
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("redis disabled")
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "tx"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, prefix: prefix}, nil
}

// Client exposes the underlying redis client (rate-limit middleware).
func (s *RedisStore) Client() *redis.Client {
	if s == nil {
		return nil
	}
	return s.client
}

// Get returns the value for key and whether it exists.
func (s *RedisStore) Get(key string) (string, bool, error) {
	value, err := s.client.Get(context.Background(), s.buildKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key without expiry.
func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), s.buildKey(key), value, 0).Err()
}

// Remove deletes key.
func (s *RedisStore) Remove(key string) error {
	return s.client.Del(context.Background(), s.buildKey(key)).Err()
}

func (s *RedisStore) buildKey(key string) string {
	return s.prefix + ":" + key
}
