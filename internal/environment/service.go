package environment

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Точность округления координат в ключе кеша (знаков после запятой).
// Убирает промахи кеша из-за дрожания плавающей точки.
const cacheKeyPrecision = 2

// Service объединяет погодный и приливной источники в единый снимок
// окружающей среды с кешированием по округленной точке.
type Service struct {
	weather WeatherClient
	tide    TideClient
	cache   SnapshotCache
	ttl     time.Duration
	logger  *logrus.Logger
}

func NewService(weather WeatherClient, tide TideClient, cache SnapshotCache, ttl time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		weather: weather,
		tide:    tide,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

// Fetch возвращает снимок условий для точки: из кеша, от внешних источников
// или синтезированный при их недоступности. Ошибка кеша не фатальна.
func (s *Service) Fetch(ctx context.Context, loc models.Location) (*models.EnvironmentalSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "environment",
		"method":  "Fetch",
		"lat":     loc.Latitude,
		"lon":     loc.Longitude,
	})

	key := cacheKey(loc)
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Snapshot cache read failed, falling through to upstream")
	}
	if cached != nil {
		log.Debug("Snapshot served from cache")
		return cached, nil
	}

	weather, werr := s.weather.CurrentWeather(ctx, loc)
	tide, terr := s.tide.CurrentTide(ctx, loc)
	if werr != nil || terr != nil {
		// Недоступность источника переживается локально: синтетический
		// снимок не кешируется, чтобы не скрывать восстановление источника
		log.WithFields(logrus.Fields{"weather_err": werr, "tide_err": terr}).
			Warn("Upstream environmental source failed, synthesizing snapshot")
		return synthesizeSnapshot(loc, time.Now().UTC()), nil
	}

	snapshot := &models.EnvironmentalSnapshot{
		Location:         loc,
		WindSpeed:        weather.WindSpeed,
		WindDirection:    weather.WindDirection,
		Temperature:      weather.Temperature,
		CurrentSpeed:     tide.CurrentSpeed,
		CurrentDirection: tide.CurrentDirection,
		TideHeight:       tide.WaterLevel,
		CapturedAt:       time.Now().UTC(),
	}

	if err := s.cache.Set(ctx, key, snapshot, s.ttl); err != nil {
		log.WithError(err).Warn("Failed to cache environmental snapshot")
	}
	return snapshot, nil
}

// cacheKey строит ключ кеша по округленным координатам
func cacheKey(loc models.Location) string {
	return fmt.Sprintf("envsnap:%.*f:%.*f", cacheKeyPrecision, loc.Latitude, cacheKeyPrecision, loc.Longitude)
}
