package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const storageTimeout = 2 * time.Second

// LimiterStorage adapts the Redis client to fiber.Storage so rate-limit
// counters are shared between replicas.
type LimiterStorage struct {
	client *redis.Client
	prefix string
}

var _ fiber.Storage = (*LimiterStorage)(nil)

// LimiterStorage returns a fiber.Storage backed by this client, or nil when
// Redis is disabled.
func (r *Redis) LimiterStorage() fiber.Storage {
	if r == nil || r.Client == nil {
		return nil
	}
	return &LimiterStorage{client: r.Client, prefix: r.keyPrefix + "ratelimit:"}
}

func (s *LimiterStorage) key(k string) string {
	return s.prefix + k
}

// Get returns nil, nil for missing keys as fiber.Storage requires.
func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *LimiterStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes every key under the limiter prefix.
func (s *LimiterStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Close is a no-op; the owning Redis wrapper closes the client.
func (s *LimiterStorage) Close() error {
	return nil
}
