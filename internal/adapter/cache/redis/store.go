// Package redis implements the persistent audio byte tier on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/lexilens-backend/internal/config"
)

const keyPrefix = "lexilens:audio:"

// Store keeps audio clips in Redis with a fixed TTL.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// New creates a Store. A non-positive ttl keeps entries without expiry.
func New(client *goredis.Client, ttl time.Duration) *Store {
	if ttl < 0 {
		ttl = 0
	}
	return &Store{client: client, ttl: ttl}
}

// Get returns the stored bytes. ok is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (data []byte, ok bool, err error) {
	data, err = s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores data under key.
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Ping reports whether Redis is reachable. Used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
