package cart

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Carts are abandoned all the time; let Redis reap them.
const redisCartTTL = 7 * 24 * time.Hour

// RedisStorage persists carts in Redis, one serialized cart per key.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects using a redis:// URL and verifies the connection
// with a ping.
func NewRedisStorage(ctx context.Context, redisURL string) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStorage{client: client}, nil
}

func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStorage) Set(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, redisCartTTL).Err()
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
