package database

import (
	"context"
	"time"

	"repair_shop/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RedisStorage adapts a go-redis client to fiber.Storage so the cache and
// limiter middleware can share state across restarts. When REDIS_ADDR is
// unset the middleware falls back to Fiber's in-memory storage.
type RedisStorage struct {
	client *redis.Client
}

var _ fiber.Storage = (*RedisStorage)(nil)

func NewRedisStorage() *RedisStorage {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

func (s *RedisStorage) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
