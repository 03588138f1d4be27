package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const lowStockKeySuffix = "settings:low_stock_threshold"

// RedisSettings reads operator-tunable values from Redis, falling back to
// configured defaults when a key is absent or unparseable.
type RedisSettings struct {
	client           *redis.Client
	key              string
	defaultThreshold int
}

func NewRedisSettings(client *redis.Client, prefix string, defaultThreshold int) *RedisSettings {
	return &RedisSettings{
		client:           client,
		key:              fmt.Sprintf("%s:%s", prefix, lowStockKeySuffix),
		defaultThreshold: defaultThreshold,
	}
}

func (s *RedisSettings) LowStockThreshold(ctx context.Context) int {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		return s.defaultThreshold
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return s.defaultThreshold
	}
	return v
}

// StaticSettings serves fixed values when Redis is disabled.
type StaticSettings struct {
	Threshold int
}

func (s StaticSettings) LowStockThreshold(_ context.Context) int {
	return s.Threshold
}
