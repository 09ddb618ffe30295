package stream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	updateQueueKey = "spill_updates"

	// Пауза перед повторной попыткой после ошибки Redis
	retryDelay = 5 * time.Second
)

// EventApplier - единая точка согласования событий (Reconciler)
type EventApplier interface {
	Apply(ctx context.Context, event models.StreamEvent) (*models.Spill, error)
}

// Subscriber - потребитель потока обновлений инцидентов из очереди Redis
type Subscriber struct {
	redisClient *redis.Client
	applier     EventApplier
	logger      *logrus.Logger
}

// NewSubscriber создает новый Subscriber
func NewSubscriber(redisClient *redis.Client, applier EventApplier, logger *logrus.Logger) *Subscriber {
	return &Subscriber{
		redisClient: redisClient,
		applier:     applier,
		logger:      logger,
	}
}

// Start запускает горутину потребления потока обновлений
func (s *Subscriber) Start(ctx context.Context) {
	s.logger.Info("Starting update stream subscriber...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping update stream subscriber.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := s.redisClient.BRPop(ctx, 0, updateQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					s.logger.WithError(err).Error("Failed to pop update event from Redis")
					time.Sleep(retryDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event models.StreamEvent
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					// Искаженное сообщение пропускается, поток не останавливается
					s.logger.WithError(err).Error("Failed to unmarshal update event from Redis")
					continue
				}

				if _, err := s.applier.Apply(ctx, event); err != nil {
					s.logger.WithError(err).WithField("event_type", event.Type).Warn("Update event rejected")
				}
			}
		}
	}()
}
