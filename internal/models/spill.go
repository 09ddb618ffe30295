package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority - приоритет инцидента
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// SpillStatus - статус жизненного цикла разлива
type SpillStatus string

const (
	StatusActive    SpillStatus = "ACTIVE"
	StatusContained SpillStatus = "CONTAINED"
	StatusCleanedUp SpillStatus = "CLEANED_UP"
	StatusArchived  SpillStatus = "ARCHIVED"
)

var statusRank = map[SpillStatus]int{
	StatusActive:    0,
	StatusContained: 1,
	StatusCleanedUp: 2,
	StatusArchived:  3,
}

// Rank возвращает порядковый номер статуса в жизненном цикле.
// Переход назад по этому порядку допускается только как явная корректировка данных.
func (s SpillStatus) Rank() (int, bool) {
	rank, ok := statusRank[s]
	return rank, ok
}

// Location - координаты точки разлива
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Spill представляет инцидент химического разлива
type Spill struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	ChemicalType    string      `json:"chemical_type"`
	CASNumber       string      `json:"cas_number,omitempty"`
	Source          string      `json:"source,omitempty"`
	Priority        Priority    `json:"priority"`
	Status          SpillStatus `json:"status"`
	Volume          float64     `json:"volume"` // литры
	VolumeEstimated bool        `json:"volume_estimated"`
	Location        Location    `json:"location"`
	WaterDepth      float64     `json:"water_depth"` // метры
	HazardClass     string      `json:"hazard_class,omitempty"`
	SpillTime       time.Time   `json:"spill_time"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// DispersionEstimate - последний рассчитанный результат, nil до первого расчета.
	// Заменяется целиком, никогда не изменяется по месту.
	DispersionEstimate *DispersionEstimate `json:"dispersion_estimate,omitempty"`
	LastCalculatedAt   *time.Time          `json:"last_calculated_at,omitempty"`
}

// SpillPatch - частичное обновление инцидента. Поле nil означает
// "не задано в сообщении" и сохраняет существующее значение при слиянии.
type SpillPatch struct {
	ID              uuid.UUID    `json:"id"`
	Name            *string      `json:"name,omitempty"`
	ChemicalType    *string      `json:"chemical_type,omitempty"`
	CASNumber       *string      `json:"cas_number,omitempty"`
	Source          *string      `json:"source,omitempty"`
	Priority        *Priority    `json:"priority,omitempty"`
	Status          *SpillStatus `json:"status,omitempty"`
	Volume          *float64     `json:"volume,omitempty"`
	VolumeEstimated *bool        `json:"volume_estimated,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	WaterDepth      *float64     `json:"water_depth,omitempty"`
	HazardClass     *string      `json:"hazard_class,omitempty"`
	SpillTime       *time.Time   `json:"spill_time,omitempty"`
	UpdatedAt       *time.Time   `json:"updated_at,omitempty"`
}

// PatchFromSpill преобразует полную модель в патч со всеми заполненными полями
func PatchFromSpill(s *Spill) SpillPatch {
	return SpillPatch{
		ID:              s.ID,
		Name:            &s.Name,
		ChemicalType:    &s.ChemicalType,
		CASNumber:       &s.CASNumber,
		Source:          &s.Source,
		Priority:        &s.Priority,
		Status:          &s.Status,
		Volume:          &s.Volume,
		VolumeEstimated: &s.VolumeEstimated,
		Latitude:        &s.Location.Latitude,
		Longitude:       &s.Location.Longitude,
		WaterDepth:      &s.WaterDepth,
		HazardClass:     &s.HazardClass,
		SpillTime:       &s.SpillTime,
		UpdatedAt:       &s.UpdatedAt,
	}
}
