package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

// MutationListener вызывается после каждой успешной мутации хранилища
// со свежим снимком всего списка инцидентов. Вызов происходит вне блокировки.
type MutationListener func(spills []*models.Spill)

// SpillStore - каноническая упорядоченная коллекция инцидентов, единственный
// источник истины для слоя отображения. Все мутации проходят через Upsert/Remove,
// чтение возвращает копии. Чтение-изменение-запись выполняется как один
// неделимый шаг под мьютексом.
type SpillStore struct {
	mu       sync.Mutex
	spills   map[uuid.UUID]*models.Spill
	order    []uuid.UUID
	listener MutationListener
}

func NewSpillStore() *SpillStore {
	return &SpillStore{
		spills: make(map[uuid.UUID]*models.Spill),
	}
}

// SetMutationListener подключает слушателя мутаций (оценку аварийной обстановки)
func (s *SpillStore) SetMutationListener(fn MutationListener) {
	s.mu.Lock()
	s.listener = fn
	s.mu.Unlock()
}

// Upsert вставляет инцидент, если id еще не встречался, иначе выполняет
// неглубокое слияние: заполненные поля патча перезаписывают существующие,
// отсутствующие сохраняют прежние значения. Идемпотентен: повторное применение
// того же патча не меняет видимое состояние.
// Возвращает копию результата и признак изменения полей, инвалидирующих
// оценку дисперсии (местоположение, объем или тип химиката).
func (s *SpillStore) Upsert(patch models.SpillPatch) (*models.Spill, bool, error) {
	if patch.ID == uuid.Nil {
		return nil, false, fmt.Errorf("store: spill id is required")
	}

	s.mu.Lock()

	existing, ok := s.spills[patch.ID]
	var result *models.Spill
	invalidated := false

	if !ok {
		spill := &models.Spill{ID: patch.ID, Status: models.StatusActive, Priority: models.PriorityMedium}
		applyPatch(spill, patch)
		if spill.UpdatedAt.IsZero() {
			spill.UpdatedAt = time.Now().UTC()
		}
		s.spills[patch.ID] = spill
		s.order = append(s.order, patch.ID)
		result = cloneSpill(spill)
	} else {
		before := snapshotKeyFields(existing)
		applyPatch(existing, patch)
		after := snapshotKeyFields(existing)

		// Смена только статуса не инвалидирует оценку
		if before != after {
			existing.DispersionEstimate = nil
			existing.LastCalculatedAt = nil
			invalidated = true
		}
		result = cloneSpill(existing)
	}

	listener, list := s.listener, s.listLocked()
	s.mu.Unlock()

	if listener != nil {
		listener(list)
	}
	return result, invalidated, nil
}

// Get возвращает копию инцидента по id
func (s *SpillStore) Get(id uuid.UUID) (*models.Spill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spill, ok := s.spills[id]
	if !ok {
		return nil, false
	}
	return cloneSpill(spill), true
}

// List возвращает копии всех инцидентов в порядке добавления
func (s *SpillStore) List() []*models.Spill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

// ListActive возвращает копии инцидентов со статусом ACTIVE
func (s *SpillStore) ListActive() []*models.Spill {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]*models.Spill, 0)
	for _, id := range s.order {
		if spill := s.spills[id]; spill.Status == models.StatusActive {
			active = append(active, cloneSpill(spill))
		}
	}
	return active
}

// Remove удаляет инцидент из коллекции
func (s *SpillStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()

	if _, ok := s.spills[id]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.spills, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	listener, list := s.listener, s.listLocked()
	s.mu.Unlock()

	if listener != nil {
		listener(list)
	}
	return true
}

// Confirm заменяет временный клиентский id на авторитетный серверный:
// временная запись удаляется, серверная копия вставляется тем же шагом.
func (s *SpillStore) Confirm(tempID uuid.UUID, authoritative models.SpillPatch) (*models.Spill, error) {
	if authoritative.ID == uuid.Nil {
		return nil, fmt.Errorf("store: authoritative spill id is required")
	}

	s.mu.Lock()
	if _, ok := s.spills[tempID]; ok && tempID != authoritative.ID {
		delete(s.spills, tempID)
		for i, oid := range s.order {
			if oid == tempID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	spill, _, err := s.Upsert(authoritative)
	return spill, err
}

// AttachEstimate атомарно заменяет оценку дисперсии инцидента.
// Оценка никогда не изменяется по месту, только замещается целиком.
func (s *SpillStore) AttachEstimate(id uuid.UUID, estimate models.DispersionEstimate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	spill, ok := s.spills[id]
	if !ok {
		return false
	}
	est := estimate
	spill.DispersionEstimate = &est
	calculatedAt := estimate.CalculatedAt
	spill.LastCalculatedAt = &calculatedAt
	return true
}

func (s *SpillStore) listLocked() []*models.Spill {
	list := make([]*models.Spill, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, cloneSpill(s.spills[id]))
	}
	return list
}

// keyFields - поля, изменение которых делает прежнюю оценку дисперсии недействительной
type keyFields struct {
	lat, lon, volume float64
	chemical         string
}

func snapshotKeyFields(s *models.Spill) keyFields {
	return keyFields{
		lat:      s.Location.Latitude,
		lon:      s.Location.Longitude,
		volume:   s.Volume,
		chemical: s.ChemicalType,
	}
}

func applyPatch(s *models.Spill, p models.SpillPatch) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ChemicalType != nil {
		s.ChemicalType = *p.ChemicalType
	}
	if p.CASNumber != nil {
		s.CASNumber = *p.CASNumber
	}
	if p.Source != nil {
		s.Source = *p.Source
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.VolumeEstimated != nil {
		s.VolumeEstimated = *p.VolumeEstimated
	}
	if p.Latitude != nil {
		s.Location.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		s.Location.Longitude = *p.Longitude
	}
	if p.WaterDepth != nil {
		s.WaterDepth = *p.WaterDepth
	}
	if p.HazardClass != nil {
		s.HazardClass = *p.HazardClass
	}
	if p.SpillTime != nil {
		s.SpillTime = *p.SpillTime
	}
	if p.UpdatedAt != nil {
		s.UpdatedAt = *p.UpdatedAt
	}
}

func cloneSpill(s *models.Spill) *models.Spill {
	clone := *s
	if s.DispersionEstimate != nil {
		est := *s.DispersionEstimate
		clone.DispersionEstimate = &est
	}
	if s.LastCalculatedAt != nil {
		ts := *s.LastCalculatedAt
		clone.LastCalculatedAt = &ts
	}
	return &clone
}
