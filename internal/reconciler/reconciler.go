package reconciler

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/store"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=reconciler.go -destination=mocks/scheduler_mock.go -package=mocks

// CalcScheduler - часть оркестратора, нужная согласователю
type CalcScheduler interface {
	Request(ctx context.Context, id uuid.UUID, force bool) bool
	Reset(id uuid.UUID)
	Drop(id uuid.UUID)
}

// patchBounds - граничная проверка полей патча. Невалидный payload
// отклоняется целиком и не попадает в хранилище.
type patchBounds struct {
	Latitude  *float64 `validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `validate:"omitempty,gte=-180,lte=180"`
	Volume    *float64 `validate:"omitempty,gte=0"`
}

// Reconciler - единая точка входа всех путей мутации: сообщения потока
// обновлений, результаты периодического опроса и действия пользователя
// проходят через Apply и сходятся к одному и тому же состоянию хранилища.
type Reconciler struct {
	store    *store.SpillStore
	calc     CalcScheduler
	validate *validator.Validate
	logger   *logrus.Logger
}

func New(spillStore *store.SpillStore, calc CalcScheduler, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		store:    spillStore,
		calc:     calc,
		validate: validator.New(),
		logger:   logger,
	}
}

// Apply согласует одно событие с хранилищем. Невалидный payload отклоняется;
// переход статуса назад по жизненному циклу игнорируется без флага correction
// (остальные поля события при этом сливаются как обычно). Новый инцидент и
// инвалидация оценки запускают расчет дисперсии.
func (r *Reconciler) Apply(ctx context.Context, event models.StreamEvent) (*models.Spill, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":    "reconciler",
		"event_type": event.Type,
		"spill_id":   event.Spill.ID,
	})

	if event.Type == models.EventEmergency && event.Spill.ID == uuid.Nil {
		// Информационное сообщение без payload: аварийная обстановка
		// выводится локально из состояния хранилища
		log.WithField("message", event.Message).Warn("Emergency stream message received")
		return nil, nil
	}

	if event.Spill.ID == uuid.Nil {
		return nil, fmt.Errorf("reconciler: event without spill id")
	}

	bounds := patchBounds{
		Latitude:  event.Spill.Latitude,
		Longitude: event.Spill.Longitude,
		Volume:    event.Spill.Volume,
	}
	if err := r.validate.Struct(bounds); err != nil {
		log.WithError(err).Warn("Event payload rejected at boundary")
		return nil, fmt.Errorf("reconciler: invalid payload: %w", err)
	}

	patch := event.Spill
	existing, existed := r.store.Get(patch.ID)

	if patch.Status != nil {
		newRank, known := patch.Status.Rank()
		switch {
		case !known:
			log.WithField("status", *patch.Status).Warn("Unknown status ignored")
			patch.Status = nil
		case existed && !event.Correction:
			if curRank, ok := existing.Status.Rank(); ok && newRank < curRank {
				log.WithFields(logrus.Fields{
					"current":  existing.Status,
					"incoming": *patch.Status,
				}).Warn("Status regression ignored without correction flag")
				patch.Status = nil
			}
		}
	}

	spill, invalidated, err := r.store.Upsert(patch)
	if err != nil {
		return nil, fmt.Errorf("reconciler: %w", err)
	}

	if !existed {
		r.calc.Request(ctx, spill.ID, false)
	} else if invalidated {
		// Прежняя оценка сброшена хранилищем, открываем запись расчета
		r.calc.Reset(spill.ID)
		r.calc.Request(ctx, spill.ID, false)
	}
	return spill, nil
}

// SyncAll согласует полный список опроса: каждый элемент проходит через
// Apply, инциденты, исчезнувшие из коллекции, удаляются вместе с записями расчетов.
func (r *Reconciler) SyncAll(ctx context.Context, patches []models.SpillPatch) error {
	seen := make(map[uuid.UUID]struct{}, len(patches))
	var firstErr error

	for _, patch := range patches {
		seen[patch.ID] = struct{}{}
		if _, err := r.Apply(ctx, models.StreamEvent{Type: models.EventUpdated, Spill: patch}); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, spill := range r.store.List() {
		if _, ok := seen[spill.ID]; !ok {
			r.store.Remove(spill.ID)
			r.calc.Drop(spill.ID)
		}
	}
	return firstErr
}
