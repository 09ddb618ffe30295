package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/dispersion_monitoring_system/internal/alert"
	"github.com/shenikar/dispersion_monitoring_system/internal/compute"
	"github.com/shenikar/dispersion_monitoring_system/internal/config"
	"github.com/shenikar/dispersion_monitoring_system/internal/emergency"
	"github.com/shenikar/dispersion_monitoring_system/internal/environment"
	v1 "github.com/shenikar/dispersion_monitoring_system/internal/handler/http/v1"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/orchestrator"
	"github.com/shenikar/dispersion_monitoring_system/internal/poller"
	"github.com/shenikar/dispersion_monitoring_system/internal/reconciler"
	"github.com/shenikar/dispersion_monitoring_system/internal/service"
	"github.com/shenikar/dispersion_monitoring_system/internal/store"
	"github.com/shenikar/dispersion_monitoring_system/internal/stream"
	"github.com/shenikar/dispersion_monitoring_system/internal/upstream"
	"github.com/shenikar/dispersion_monitoring_system/pkg/logger"
	redisclient "github.com/shenikar/dispersion_monitoring_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/dispersion_monitoring_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Dispersion Monitoring System API
// @version 1.0
// @description Chemical spill incident monitoring and dispersion estimation service.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиенты внешних сервисов
	upstreamClient := upstream.NewHTTPClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	computeClient := compute.NewHTTPClient(cfg.ComputeBaseURL, cfg.ComputeTimeout)
	weatherClient := environment.NewHTTPWeatherClient(cfg.WeatherBaseURL, cfg.UpstreamTimeout)
	tideClient := environment.NewHTTPTideClient(cfg.TideBaseURL, cfg.UpstreamTimeout)

	// Сервис условий среды с кешем в Redis и синтетическим фолбэком
	snapshotCache := environment.NewRedisSnapshotCache(redisClient)
	envService := environment.NewService(weatherClient, tideClient, snapshotCache, cfg.SnapshotTTL, log)

	// Хранилище инцидентов и оркестратор расчетов
	spillStore := store.NewSpillStore()
	calcOrchestrator := orchestrator.New(spillStore, envService, computeClient,
		cfg.SimulationHours, cfg.ComputeTimeout, log)

	// Оценка аварийной обстановки на каждой мутации хранилища;
	// оповещение публикуется только на переходе 0 -> N
	emergencyTracker := emergency.NewTracker()
	alertPublisher := alert.NewRedisAlertPublisher(redisClient)
	spillStore.SetMutationListener(func(spills []*models.Spill) {
		status := emergencyTracker.Update(spills)
		if !status.NewAlert() {
			return
		}

		critical := make([]*models.Spill, 0, status.CriticalCount)
		for _, s := range spills {
			if emergency.IsCritical(s) {
				critical = append(critical, s)
			}
		}
		event := alert.AlertEvent{
			CriticalCount: status.CriticalCount,
			Message:       status.Message,
			Timestamp:     time.Now().UTC(),
			Spills:        critical,
		}
		if err := alertPublisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish alert event")
		}
	})

	// Инициализация и запуск воркера доставки оповещений
	alertWorker := alert.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Согласователь: единая точка входа всех путей мутации
	eventReconciler := reconciler.New(spillStore, calcOrchestrator, log)

	// Потребитель потока обновлений и периодический опрос коллекции
	streamSubscriber := stream.NewSubscriber(redisClient, eventReconciler, log)
	streamSubscriber.Start(ctx)

	spillPoller := poller.NewPoller(upstreamClient, eventReconciler, cfg.RefreshInterval, log)
	spillPoller.Start(ctx)

	// Инициализация сервисов
	spillService := service.NewSpillService(spillStore, upstreamClient, eventReconciler,
		calcOrchestrator, emergencyTracker, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(spillService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем фоновые контуры и дожидаемся расчетов в полете
	cancel()
	calcOrchestrator.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
