package reconciler

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/reconciler/mocks"
	"github.com/shenikar/dispersion_monitoring_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReconciler(t *testing.T) (*Reconciler, *store.SpillStore, *mocks.MockCalcScheduler) {
	ctrl := gomock.NewController(t)
	calcMock := mocks.NewMockCalcScheduler(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	spillStore := store.NewSpillStore()
	return New(spillStore, calcMock, logger), spillStore, calcMock
}

func strPtr(s string) *string                            { return &s }
func floatPtr(f float64) *float64                        { return &f }
func statusPtr(s models.SpillStatus) *models.SpillStatus { return &s }

func createdEvent(id uuid.UUID) models.StreamEvent {
	return models.StreamEvent{
		Type: models.EventCreated,
		Spill: models.SpillPatch{
			ID:           id,
			Name:         strPtr("Разлив дизеля"),
			ChemicalType: strPtr("Diesel"),
			Volume:       floatPtr(2500),
			Latitude:     floatPtr(42.9),
			Longitude:    floatPtr(132.0),
		},
	}
}

func TestApply_NewSpillTriggersCalculation(t *testing.T) {
	// Подготовка
	r, spillStore, calcMock := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1)

	// Действие
	spill, err := r.Apply(ctx, createdEvent(id))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, id, spill.ID)
	assert.Equal(t, models.StatusActive, spill.Status)

	stored, ok := spillStore.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Diesel", stored.ChemicalType)
}

func TestApply_InvalidPayloadRejected(t *testing.T) {
	// Подготовка
	r, spillStore, _ := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name  string
		patch models.SpillPatch
	}{
		{"широта вне диапазона", models.SpillPatch{ID: id, Latitude: floatPtr(95)}},
		{"долгота вне диапазона", models.SpillPatch{ID: id, Longitude: floatPtr(-200)}},
		{"отрицательный объем", models.SpillPatch{ID: id, Volume: floatPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Действие
			_, err := r.Apply(ctx, models.StreamEvent{Type: models.EventUpdated, Spill: tt.patch})

			// Проверки: событие отклонено целиком, хранилище не тронуто
			require.Error(t, err)
			_, ok := spillStore.Get(id)
			assert.False(t, ok)
		})
	}
}

func TestApply_EventWithoutIDRejected(t *testing.T) {
	r, _, _ := newTestReconciler(t)

	_, err := r.Apply(context.Background(), models.StreamEvent{Type: models.EventUpdated})
	require.Error(t, err)
}

func TestApply_StatusRegressionIgnoredWithoutCorrection(t *testing.T) {
	// Подготовка
	r, spillStore, calcMock := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1)
	_, err := r.Apply(ctx, createdEvent(id))
	require.NoError(t, err)

	_, err = r.Apply(ctx, models.StreamEvent{
		Type:  models.EventStatusChanged,
		Spill: models.SpillPatch{ID: id, Status: statusPtr(models.StatusCleanedUp)},
	})
	require.NoError(t, err)

	// Действие: откат статуса без флага корректировки, но с новым именем
	spill, err := r.Apply(ctx, models.StreamEvent{
		Type: models.EventUpdated,
		Spill: models.SpillPatch{
			ID:     id,
			Name:   strPtr("Уточненное название"),
			Status: statusPtr(models.StatusActive),
		},
	})

	// Проверки: статус сохранен, остальные поля слиты
	require.NoError(t, err)
	assert.Equal(t, models.StatusCleanedUp, spill.Status)
	assert.Equal(t, "Уточненное название", spill.Name)

	stored, _ := spillStore.Get(id)
	assert.Equal(t, models.StatusCleanedUp, stored.Status)
}

func TestApply_StatusRegressionAllowedWithCorrection(t *testing.T) {
	// Подготовка
	r, _, calcMock := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1)
	_, err := r.Apply(ctx, createdEvent(id))
	require.NoError(t, err)

	_, err = r.Apply(ctx, models.StreamEvent{
		Type:  models.EventStatusChanged,
		Spill: models.SpillPatch{ID: id, Status: statusPtr(models.StatusContained)},
	})
	require.NoError(t, err)

	// Действие: явная корректировка данных
	spill, err := r.Apply(ctx, models.StreamEvent{
		Type:       models.EventStatusChanged,
		Spill:      models.SpillPatch{ID: id, Status: statusPtr(models.StatusActive)},
		Correction: true,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, spill.Status)
}

func TestApply_UnknownStatusIgnored(t *testing.T) {
	// Подготовка
	r, _, calcMock := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1)
	_, err := r.Apply(ctx, createdEvent(id))
	require.NoError(t, err)

	// Действие
	spill, err := r.Apply(ctx, models.StreamEvent{
		Type:  models.EventStatusChanged,
		Spill: models.SpillPatch{ID: id, Status: statusPtr(models.SpillStatus("EXPLODED"))},
	})

	// Проверки: неизвестный статус отброшен, событие не фатально
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, spill.Status)
}

func TestApply_InvalidationResetsAndRetriggers(t *testing.T) {
	// Подготовка
	r, _, calcMock := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1)
	_, err := r.Apply(ctx, createdEvent(id))
	require.NoError(t, err)

	// Ожидания: смена объема открывает запись и запускает новый расчет
	gomock.InOrder(
		calcMock.EXPECT().Reset(id).Times(1),
		calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1),
	)

	// Действие
	_, err = r.Apply(ctx, models.StreamEvent{
		Type:  models.EventUpdated,
		Spill: models.SpillPatch{ID: id, Volume: floatPtr(9000)},
	})
	require.NoError(t, err)
}

func TestApply_StatusOnlyChangeDoesNotRetrigger(t *testing.T) {
	// Подготовка
	r, _, calcMock := newTestReconciler(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания: ровно один запрос расчета - при создании
	calcMock.EXPECT().Request(gomock.Any(), id, false).Return(true).Times(1)

	_, err := r.Apply(ctx, createdEvent(id))
	require.NoError(t, err)

	// Действие: смена статуса не инвалидирует оценку
	_, err = r.Apply(ctx, models.StreamEvent{
		Type:  models.EventStatusChanged,
		Spill: models.SpillPatch{ID: id, Status: statusPtr(models.StatusContained)},
	})
	require.NoError(t, err)
}

func TestApply_EmergencyMessageWithoutPayload(t *testing.T) {
	r, _, _ := newTestReconciler(t)

	spill, err := r.Apply(context.Background(), models.StreamEvent{
		Type:    models.EventEmergency,
		Message: "2 emergency level spill(s) detected",
	})
	require.NoError(t, err)
	assert.Nil(t, spill)
}

func TestSyncAll_RemovesVanishedSpills(t *testing.T) {
	// Подготовка: два инцидента, в новом списке остается один
	r, spillStore, calcMock := newTestReconciler(t)
	ctx := context.Background()
	kept := uuid.New()
	vanished := uuid.New()

	calcMock.EXPECT().Request(gomock.Any(), gomock.Any(), false).Return(true).Times(2)
	_, err := r.Apply(ctx, createdEvent(kept))
	require.NoError(t, err)
	_, err = r.Apply(ctx, createdEvent(vanished))
	require.NoError(t, err)

	// Ожидания
	calcMock.EXPECT().Drop(vanished).Times(1)

	// Действие
	err = r.SyncAll(ctx, []models.SpillPatch{{ID: kept, Volume: floatPtr(2500)}})

	// Проверки
	require.NoError(t, err)
	_, ok := spillStore.Get(kept)
	assert.True(t, ok)
	_, ok = spillStore.Get(vanished)
	assert.False(t, ok)
}
