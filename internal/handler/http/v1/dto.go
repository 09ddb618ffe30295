package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateSpillRequest DTO для регистрации разлива
// @Description DTO для регистрации разлива
type CreateSpillRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=255"`
	ChemicalType    string  `json:"chemical_type" validate:"required,min=2,max=255"`
	CASNumber       string  `json:"cas_number,omitempty"`
	Source          string  `json:"source,omitempty"`
	Priority        string  `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Volume          float64 `json:"volume" validate:"required,gt=0"`
	VolumeEstimated bool    `json:"volume_estimated,omitempty"`
	Latitude        float64 `json:"latitude" validate:"required,latitude"`
	Longitude       float64 `json:"longitude" validate:"required,longitude"`
	WaterDepth      float64 `json:"water_depth,omitempty" validate:"omitempty,gte=0"`
	HazardClass     string  `json:"hazard_class,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса разлива
// @Description DTO для смены статуса разлива
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE CONTAINED CLEANED_UP ARCHIVED"`
	// Correction разрешает переход статуса назад по жизненному циклу
	Correction bool `json:"correction,omitempty"`
}

// DispersionEstimateResponse DTO для результата расчета дисперсии
// @Description DTO для результата расчета дисперсии
type DispersionEstimateResponse struct {
	RadiusMeters       float64   `json:"radius_meters"`
	SpreadDirectionDeg float64   `json:"spread_direction_deg"`
	Opacity            float64   `json:"opacity"`
	ColorClass         string    `json:"color_class"`
	AffectedAreaKm2    *float64  `json:"affected_area_km2,omitempty"`
	MaxConcentration   *float64  `json:"max_concentration,omitempty"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

// SpillResponse DTO для ответа с информацией о разливе
// @Description DTO для ответа с информацией о разливе
type SpillResponse struct {
	ID                    uuid.UUID                   `json:"id"`
	Name                  string                      `json:"name"`
	ChemicalType          string                      `json:"chemical_type"`
	CASNumber             string                      `json:"cas_number,omitempty"`
	Source                string                      `json:"source,omitempty"`
	Priority              string                      `json:"priority"`
	Status                string                      `json:"status"`
	Volume                float64                     `json:"volume"`
	VolumeEstimated       bool                        `json:"volume_estimated"`
	Latitude              float64                     `json:"latitude"`
	Longitude             float64                     `json:"longitude"`
	WaterDepth            float64                     `json:"water_depth"`
	HazardClass           string                      `json:"hazard_class,omitempty"`
	SpillTime             time.Time                   `json:"spill_time"`
	UpdatedAt             time.Time                   `json:"updated_at"`
	DispersionEstimate    *DispersionEstimateResponse `json:"dispersion_estimate,omitempty"`
	LastCalculatedAt      *time.Time                  `json:"last_calculated_at,omitempty"`
	CalculationInProgress bool                        `json:"calculation_in_progress"`
}

// EmergencyResponse DTO для ответа с аварийной обстановкой
// @Description DTO для ответа с аварийной обстановкой
type EmergencyResponse struct {
	CriticalCount int    `json:"critical_count"`
	Message       string `json:"message,omitempty"`
}

// RecalculateResponse DTO для ответа на принудительный пересчет
// @Description DTO для ответа на принудительный пересчет
type RecalculateResponse struct {
	// Accepted = false означает, что расчет уже идет и запрос отброшен
	Accepted bool `json:"accepted"`
}
