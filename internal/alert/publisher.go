package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent - структура для данных аварийного оповещения
type AlertEvent struct {
	CriticalCount int             `json:"critical_count"`
	Message       string          `json:"message"`
	Timestamp     time.Time       `json:"timestamp"`
	Spills        []*models.Spill `json:"spills,omitempty"` // Критичные инциденты, вызвавшие оповещение
}

// AlertPublisher - интерфейс для публикации аварийных оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует аварийное оповещение в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
