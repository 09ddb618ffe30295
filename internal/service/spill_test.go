package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/emergency"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/service"
	"github.com/shenikar/dispersion_monitoring_system/internal/service/mocks"
	"github.com/shenikar/dispersion_monitoring_system/internal/store"
	upstream_mocks "github.com/shenikar/dispersion_monitoring_system/internal/upstream/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	store     *store.SpillStore
	upstream  *upstream_mocks.MockClient
	applier   *mocks.MockEventApplier
	calc      *mocks.MockCalculator
	emergency *mocks.MockEmergencySource
}

func newTestService(t *testing.T) (service.SpillService, serviceDeps) {
	ctrl := gomock.NewController(t)
	deps := serviceDeps{
		store:     store.NewSpillStore(),
		upstream:  upstream_mocks.NewMockClient(ctrl),
		applier:   mocks.NewMockEventApplier(ctrl),
		calc:      mocks.NewMockCalculator(ctrl),
		emergency: mocks.NewMockEmergencySource(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewSpillService(deps.store, deps.upstream, deps.applier, deps.calc, deps.emergency, logger)
	return svc, deps
}

func seedStoredSpill(t *testing.T, s *store.SpillStore, status models.SpillStatus) uuid.UUID {
	id := uuid.New()
	name := "Разлив бензола"
	chemical := "Benzene"
	volume := 1200.0
	_, _, err := s.Upsert(models.SpillPatch{ID: id, Name: &name, ChemicalType: &chemical, Volume: &volume, Status: &status})
	require.NoError(t, err)
	return id
}

func TestCreateSpill_ConfirmsAuthoritativeID(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	ctx := context.Background()
	serverID := uuid.New()
	spill := &models.Spill{Name: "Новый разлив", ChemicalType: "Diesel", Volume: 300}

	var tempID uuid.UUID

	// Ожидания: локальная вставка с временным id, подтверждение сервером,
	// запись расчета следует за сменой id
	deps.applier.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.StreamEvent) (*models.Spill, error) {
			require.Equal(t, models.EventCreated, event.Type)
			tempID = event.Spill.ID
			local, _, err := deps.store.Upsert(event.Spill)
			return local, err
		}).Times(1)
	deps.upstream.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *models.Spill) (*models.SpillPatch, error) {
			patch := models.PatchFromSpill(s)
			patch.ID = serverID
			return &patch, nil
		}).Times(1)
	deps.calc.EXPECT().Drop(gomock.Any()).Do(func(id uuid.UUID) {
		assert.Equal(t, tempID, id)
	}).Times(1)
	deps.calc.EXPECT().Request(gomock.Any(), serverID, false).Return(true).Times(1)

	// Действие
	created, err := svc.CreateSpill(ctx, spill)

	// Проверки: временная запись замещена авторитетной
	require.NoError(t, err)
	assert.Equal(t, serverID, created.ID)

	_, ok := deps.store.Get(tempID)
	assert.False(t, ok)
	_, ok = deps.store.Get(serverID)
	assert.True(t, ok)
}

func TestCreateSpill_UpstreamFailureKeepsLocalCopy(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	ctx := context.Background()
	spill := &models.Spill{Name: "Новый разлив", ChemicalType: "Diesel", Volume: 300}

	var tempID uuid.UUID
	deps.applier.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.StreamEvent) (*models.Spill, error) {
			tempID = event.Spill.ID
			local, _, err := deps.store.Upsert(event.Spill)
			return local, err
		}).Times(1)
	deps.upstream.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("upstream down")).Times(1)

	// Действие
	_, err := svc.CreateSpill(ctx, spill)

	// Проверки: ошибка возвращена, оптимистичная копия осталась до согласования
	require.Error(t, err)
	_, ok := deps.store.Get(tempID)
	assert.True(t, ok)
}

func TestGetSpill_ReturnsViewWithProgressFlag(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	id := seedStoredSpill(t, deps.store, models.StatusActive)

	deps.calc.EXPECT().InProgress(id).Return(true).Times(1)

	// Действие
	view, err := svc.GetSpill(context.Background(), id)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, id, view.Spill.ID)
	assert.True(t, view.CalculationInProgress)
}

func TestGetSpill_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetSpill(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrSpillNotFound)
}

func TestListSpills_PreservesOrder(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	first := seedStoredSpill(t, deps.store, models.StatusActive)
	second := seedStoredSpill(t, deps.store, models.StatusContained)

	deps.calc.EXPECT().InProgress(gomock.Any()).Return(false).Times(2)

	// Действие
	views, err := svc.ListSpills(context.Background())

	// Проверки: порядок добавления сохранен
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first, views[0].Spill.ID)
	assert.Equal(t, second, views[1].Spill.ID)
}

func TestUpdateStatus_AppliesAndPushesUpstream(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	ctx := context.Background()
	id := seedStoredSpill(t, deps.store, models.StatusActive)

	// Ожидания
	deps.applier.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.StreamEvent) (*models.Spill, error) {
			require.Equal(t, models.EventStatusChanged, event.Type)
			require.False(t, event.Correction)
			spill, _, err := deps.store.Upsert(event.Spill)
			return spill, err
		}).Times(1)
	deps.upstream.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusContained).Return(nil).Times(1)

	// Действие
	spill, err := svc.UpdateStatus(ctx, id, models.StatusContained, false)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusContained, spill.Status)
}

func TestUpdateStatus_UpstreamFailureNotFatal(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	ctx := context.Background()
	id := seedStoredSpill(t, deps.store, models.StatusActive)

	deps.applier.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.StreamEvent) (*models.Spill, error) {
			spill, _, err := deps.store.Upsert(event.Spill)
			return spill, err
		}).Times(1)
	deps.upstream.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusContained).Return(fmt.Errorf("upstream down")).Times(1)

	// Действие: локальное состояние обновляется несмотря на сбой внешнего API
	spill, err := svc.UpdateStatus(ctx, id, models.StatusContained, false)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusContained, spill.Status)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc, deps := newTestService(t)
	id := seedStoredSpill(t, deps.store, models.StatusActive)

	_, err := svc.UpdateStatus(context.Background(), id, models.SpillStatus("EXPLODED"), false)
	require.Error(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), models.StatusContained, false)
	require.ErrorIs(t, err, service.ErrSpillNotFound)
}

func TestRecalculate_ForcesNewCalculation(t *testing.T) {
	// Подготовка
	svc, deps := newTestService(t)
	id := seedStoredSpill(t, deps.store, models.StatusActive)

	deps.calc.EXPECT().Request(gomock.Any(), id, true).Return(true).Times(1)

	// Действие
	accepted, err := svc.Recalculate(context.Background(), id)

	// Проверки
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestRecalculate_InFlightDropped(t *testing.T) {
	svc, deps := newTestService(t)
	id := seedStoredSpill(t, deps.store, models.StatusActive)

	deps.calc.EXPECT().Request(gomock.Any(), id, true).Return(false).Times(1)

	accepted, err := svc.Recalculate(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestEmergency_ReturnsTrackedStatus(t *testing.T) {
	svc, deps := newTestService(t)

	deps.emergency.EXPECT().Current().Return(emergency.Status{
		CriticalCount: 2,
		Message:       "2 emergency level spill(s) detected",
	}).Times(1)

	status := svc.Emergency(context.Background())
	assert.Equal(t, 2, status.CriticalCount)
	assert.Contains(t, status.Message, "emergency")
}
