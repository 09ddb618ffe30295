package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/emergency"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/store"
	"github.com/shenikar/dispersion_monitoring_system/internal/upstream"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=spill.go -destination=mocks/deps_mock.go -package=mocks

// ErrSpillNotFound возвращается при запросе неизвестного инцидента
var ErrSpillNotFound = errors.New("spill not found")

// EventApplier - единая точка согласования событий (Reconciler)
type EventApplier interface {
	Apply(ctx context.Context, event models.StreamEvent) (*models.Spill, error)
}

// Calculator - часть оркестратора, доступная слою бизнес-логики
type Calculator interface {
	Request(ctx context.Context, id uuid.UUID, force bool) bool
	InProgress(id uuid.UUID) bool
	Drop(id uuid.UUID)
}

// EmergencySource - текущая аварийная обстановка
type EmergencySource interface {
	Current() emergency.Status
}

// SpillView - инцидент вместе с флагом расчета в полете для слоя отображения
type SpillView struct {
	Spill                 *models.Spill
	CalculationInProgress bool
}

// SpillService определяет контракт бизнес-логики управления разливами
type SpillService interface {
	CreateSpill(ctx context.Context, spill *models.Spill) (*models.Spill, error)
	GetSpill(ctx context.Context, id uuid.UUID) (*SpillView, error)
	ListSpills(ctx context.Context) ([]*SpillView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SpillStatus, correction bool) (*models.Spill, error)
	Recalculate(ctx context.Context, id uuid.UUID) (bool, error)
	Emergency(ctx context.Context) emergency.Status
}

type spillService struct {
	store      *store.SpillStore
	upstream   upstream.Client
	reconciler EventApplier
	calc       Calculator
	emergency  EmergencySource
	logger     *logrus.Logger
}

func NewSpillService(spillStore *store.SpillStore, upstreamClient upstream.Client,
	applier EventApplier, calc Calculator, emergencySource EmergencySource, logger *logrus.Logger) SpillService {
	return &spillService{
		store:      spillStore,
		upstream:   upstreamClient,
		reconciler: applier,
		calc:       calc,
		emergency:  emergencySource,
		logger:     logger,
	}
}

// CreateSpill регистрирует новый инцидент: оптимистичная локальная вставка
// с временным id, затем подтверждение во внешней коллекции. Авторитетная
// серверная копия замещает временную запись.
func (s *spillService) CreateSpill(ctx context.Context, spill *models.Spill) (*models.Spill, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spill",
		"method":  "CreateSpill",
		"name":    spill.Name,
	})
	log.Info("Attempting to create a new spill")

	tempID := uuid.New()
	spill.ID = tempID
	if spill.SpillTime.IsZero() {
		spill.SpillTime = time.Now().UTC()
	}

	patch := models.PatchFromSpill(spill)
	local, err := s.reconciler.Apply(ctx, models.StreamEvent{Type: models.EventCreated, Spill: patch})
	if err != nil {
		log.WithError(err).Error("Failed to insert spill locally")
		return nil, fmt.Errorf("service: could not create spill: %w", err)
	}

	created, err := s.upstream.Create(ctx, local)
	if err != nil {
		// Оптимистичная копия остается: следующий опрос согласует состояние
		log.WithError(err).Error("Failed to register spill upstream")
		return nil, fmt.Errorf("service: could not register spill upstream: %w", err)
	}

	confirmed, err := s.store.Confirm(tempID, *created)
	if err != nil {
		return nil, fmt.Errorf("service: could not confirm spill: %w", err)
	}
	if created.ID != tempID {
		// Запись расчета следует за сменой id
		s.calc.Drop(tempID)
		s.calc.Request(ctx, confirmed.ID, false)
	}

	log.WithField("spill_id", confirmed.ID).Info("Spill created successfully")
	return confirmed, nil
}

// GetSpill возвращает инцидент по id вместе с флагом расчета в полете
func (s *spillService) GetSpill(ctx context.Context, id uuid.UUID) (*SpillView, error) {
	spill, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("service: %w", ErrSpillNotFound)
	}
	return &SpillView{Spill: spill, CalculationInProgress: s.calc.InProgress(id)}, nil
}

// ListSpills возвращает все инциденты в порядке добавления
func (s *spillService) ListSpills(ctx context.Context) ([]*SpillView, error) {
	spills := s.store.List()
	views := make([]*SpillView, 0, len(spills))
	for _, spill := range spills {
		views = append(views, &SpillView{
			Spill:                 spill,
			CalculationInProgress: s.calc.InProgress(spill.ID),
		})
	}
	return views, nil
}

// UpdateStatus меняет статус инцидента. Переход назад по жизненному циклу
// требует явного флага корректировки, иначе будет отброшен согласователем.
// Изменение также отправляется во внешнюю коллекцию.
func (s *spillService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SpillStatus, correction bool) (*models.Spill, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "spill",
		"method":   "UpdateStatus",
		"spill_id": id,
		"status":   status,
	})

	if _, ok := status.Rank(); !ok {
		return nil, fmt.Errorf("service: unknown status %q", status)
	}
	if _, ok := s.store.Get(id); !ok {
		return nil, fmt.Errorf("service: %w", ErrSpillNotFound)
	}

	spill, err := s.reconciler.Apply(ctx, models.StreamEvent{
		Type:       models.EventStatusChanged,
		Spill:      models.SpillPatch{ID: id, Status: &status},
		Correction: correction,
	})
	if err != nil {
		log.WithError(err).Error("Failed to apply status change")
		return nil, fmt.Errorf("service: could not update status: %w", err)
	}

	if err := s.upstream.UpdateStatus(ctx, id, status); err != nil {
		// Внешняя коллекция догонит через поток обновлений или опрос
		log.WithError(err).Warn("Failed to push status change upstream")
	}

	log.Info("Spill status updated successfully")
	return spill, nil
}

// Recalculate принудительно запускает новый расчет дисперсии.
// Возвращает false, если расчет уже в полете.
func (s *spillService) Recalculate(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, fmt.Errorf("service: %w", ErrSpillNotFound)
	}

	accepted := s.calc.Request(ctx, id, true)
	s.logger.WithFields(logrus.Fields{
		"service":  "spill",
		"method":   "Recalculate",
		"spill_id": id,
		"accepted": accepted,
	}).Info("Forced recalculation requested")
	return accepted, nil
}

// Emergency возвращает текущую аварийную обстановку
func (s *spillService) Emergency(ctx context.Context) emergency.Status {
	return s.emergency.Current()
}
