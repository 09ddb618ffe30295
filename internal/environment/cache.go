package environment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks

// SnapshotCache определяет контракт кеша снимков окружающей среды.
// Значение заменяется целиком, частичных обновлений нет.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (*models.EnvironmentalSnapshot, error)
	Set(ctx context.Context, key string, snapshot *models.EnvironmentalSnapshot, ttl time.Duration) error
}

// RedisSnapshotCache - реализация SnapshotCache, использующая Redis
type RedisSnapshotCache struct {
	redisClient *redis.Client
}

func NewRedisSnapshotCache(client *redis.Client) *RedisSnapshotCache {
	return &RedisSnapshotCache{redisClient: client}
}

// Get пытается получить снимок из Redis. Промах кеша - (nil, nil), не ошибка.
func (c *RedisSnapshotCache) Get(ctx context.Context, key string) (*models.EnvironmentalSnapshot, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	snapshot := &models.EnvironmentalSnapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from cache: %w", err)
	}
	return snapshot, nil
}

// Set сохраняет снимок в Redis со сроком жизни
func (c *RedisSnapshotCache) Set(ctx context.Context, key string, snapshot *models.EnvironmentalSnapshot, ttl time.Duration) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}
	return nil
}
