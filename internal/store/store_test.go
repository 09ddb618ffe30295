package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string                        { return &s }
func f64Ptr(f float64) *float64                      { return &f }
func statusPtr(s models.SpillStatus) *models.SpillStatus { return &s }

func fullPatch(id uuid.UUID) models.SpillPatch {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return models.SpillPatch{
		ID:           id,
		Name:         strPtr("Разлив в гавани"),
		ChemicalType: strPtr("Crude Oil"),
		Volume:       f64Ptr(5000),
		Latitude:     f64Ptr(43.1),
		Longitude:    f64Ptr(131.9),
		SpillTime:    &ts,
	}
}

func TestUpsert_InsertAndIdempotence(t *testing.T) {
	// Подготовка
	s := NewSpillStore()
	id := uuid.New()
	patch := fullPatch(id)

	// Действие: применяем один и тот же патч дважды
	first, _, err := s.Upsert(patch)
	require.NoError(t, err)
	second, invalidated, err := s.Upsert(patch)
	require.NoError(t, err)

	// Проверки: состояние после второго применения не отличается от первого
	assert.Equal(t, first, second)
	assert.False(t, invalidated)
	assert.Len(t, s.List(), 1)
	assert.Equal(t, "Разлив в гавани", first.Name)
	assert.Equal(t, models.StatusActive, first.Status) // статус по умолчанию
}

func TestUpsert_Uniqueness(t *testing.T) {
	// Подготовка
	s := NewSpillStore()
	id := uuid.New()

	// Действие: серия upsert-ов с одним id и один с другим
	_, _, err := s.Upsert(fullPatch(id))
	require.NoError(t, err)
	_, _, err = s.Upsert(models.SpillPatch{ID: id, Name: strPtr("Новое имя")})
	require.NoError(t, err)
	_, _, err = s.Upsert(fullPatch(uuid.New()))
	require.NoError(t, err)

	// Проверки: дубликатов id нет
	list := s.List()
	assert.Len(t, list, 2)
	seen := map[uuid.UUID]bool{}
	for _, spill := range list {
		assert.False(t, seen[spill.ID])
		seen[spill.ID] = true
	}
}

func TestUpsert_MergePreservesAbsentFields(t *testing.T) {
	// Подготовка
	s := NewSpillStore()
	id := uuid.New()
	_, _, err := s.Upsert(fullPatch(id))
	require.NoError(t, err)

	// Действие: патч несет только имя
	updated, _, err := s.Upsert(models.SpillPatch{ID: id, Name: strPtr("X")})
	require.NoError(t, err)

	// Проверки: остальные поля не тронуты
	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, "Crude Oil", updated.ChemicalType)
	assert.Equal(t, 5000.0, updated.Volume)
	assert.Equal(t, 43.1, updated.Location.Latitude)
}

func TestUpsert_RejectsNilID(t *testing.T) {
	s := NewSpillStore()
	_, _, err := s.Upsert(models.SpillPatch{})
	require.Error(t, err)
}

func TestUpsert_EstimateInvalidation(t *testing.T) {
	// Подготовка: инцидент с приложенной оценкой
	s := NewSpillStore()
	id := uuid.New()
	_, _, err := s.Upsert(fullPatch(id))
	require.NoError(t, err)
	require.True(t, s.AttachEstimate(id, models.DispersionEstimate{
		SpillID:      id,
		RadiusMeters: 540,
		CalculatedAt: time.Now().UTC(),
	}))

	// Действие: смена только статуса
	afterStatus, invalidated, err := s.Upsert(models.SpillPatch{ID: id, Status: statusPtr(models.StatusContained)})
	require.NoError(t, err)

	// Проверки: оценка пережила смену статуса
	assert.False(t, invalidated)
	require.NotNil(t, afterStatus.DispersionEstimate)
	assert.Equal(t, 540.0, afterStatus.DispersionEstimate.RadiusMeters)

	// Действие: смена объема
	afterVolume, invalidated, err := s.Upsert(models.SpillPatch{ID: id, Volume: f64Ptr(9000)})
	require.NoError(t, err)

	// Проверки: оценка сброшена
	assert.True(t, invalidated)
	assert.Nil(t, afterVolume.DispersionEstimate)
	assert.Nil(t, afterVolume.LastCalculatedAt)
}

func TestUpsert_OutOfOrderMessagesConverge(t *testing.T) {
	// Два сообщения для одного id в обоих порядках дают одно и то же состояние
	buildStore := func(patches []models.SpillPatch) *models.Spill {
		s := NewSpillStore()
		id := patches[0].ID
		for _, p := range patches {
			_, _, err := s.Upsert(p)
			require.NoError(t, err)
		}
		spill, ok := s.Get(id)
		require.True(t, ok)
		spill.UpdatedAt = time.Time{} // время вставки не сравниваем
		return spill
	}

	id := uuid.New()
	statusMsg := models.SpillPatch{ID: id, Status: statusPtr(models.StatusContained)}
	nameMsg := models.SpillPatch{ID: id, Name: strPtr("X")}

	forward := buildStore([]models.SpillPatch{statusMsg, nameMsg})
	backward := buildStore([]models.SpillPatch{nameMsg, statusMsg})

	assert.Equal(t, forward, backward)
	assert.Equal(t, models.StatusContained, forward.Status)
	assert.Equal(t, "X", forward.Name)
}

func TestRemove(t *testing.T) {
	s := NewSpillStore()
	id := uuid.New()
	_, _, err := s.Upsert(fullPatch(id))
	require.NoError(t, err)

	assert.True(t, s.Remove(id))
	assert.False(t, s.Remove(id))
	assert.Empty(t, s.List())
}

func TestConfirm_ReplacesTemporaryID(t *testing.T) {
	// Подготовка: временная запись до подтверждения сервером
	s := NewSpillStore()
	tempID := uuid.New()
	_, _, err := s.Upsert(fullPatch(tempID))
	require.NoError(t, err)

	// Действие: сервер присвоил авторитетный id
	serverID := uuid.New()
	confirmed, err := s.Confirm(tempID, fullPatch(serverID))
	require.NoError(t, err)

	// Проверки: временной записи нет, есть только серверная
	assert.Equal(t, serverID, confirmed.ID)
	_, ok := s.Get(tempID)
	assert.False(t, ok)
	assert.Len(t, s.List(), 1)
}

func TestMutationListener_FiresOnUpsertAndRemove(t *testing.T) {
	// Подготовка
	s := NewSpillStore()
	var calls [][]*models.Spill
	s.SetMutationListener(func(spills []*models.Spill) {
		calls = append(calls, spills)
	})
	id := uuid.New()

	// Действие
	_, _, err := s.Upsert(fullPatch(id))
	require.NoError(t, err)
	s.Remove(id)

	// Проверки: слушатель видел оба снимка
	require.Len(t, calls, 2)
	assert.Len(t, calls[0], 1)
	assert.Empty(t, calls[1])
}

func TestListActive(t *testing.T) {
	s := NewSpillStore()
	activeID, containedID := uuid.New(), uuid.New()
	_, _, err := s.Upsert(fullPatch(activeID))
	require.NoError(t, err)
	contained := fullPatch(containedID)
	contained.Status = statusPtr(models.StatusContained)
	_, _, err = s.Upsert(contained)
	require.NoError(t, err)

	active := s.ListActive()
	require.Len(t, active, 1)
	assert.Equal(t, activeID, active[0].ID)
}

func TestGet_ReturnsCopy(t *testing.T) {
	// Мутация возвращенной копии не должна просачиваться в хранилище
	s := NewSpillStore()
	id := uuid.New()
	_, _, err := s.Upsert(fullPatch(id))
	require.NoError(t, err)

	copy1, _ := s.Get(id)
	copy1.Name = "испорчено"

	copy2, _ := s.Get(id)
	assert.Equal(t, "Разлив в гавани", copy2.Name)
}
