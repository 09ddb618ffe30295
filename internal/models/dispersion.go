package models

import (
	"time"

	"github.com/google/uuid"
)

// DispersionEstimate - ограниченная визуальная оценка распространения разлива.
// Всегда детерминированно выводится из пары (Spill, EnvironmentalSnapshot).
type DispersionEstimate struct {
	SpillID            uuid.UUID `json:"spill_id"`
	RadiusMeters       float64   `json:"radius_meters"`        // [100, 10000]
	SpreadDirectionDeg float64   `json:"spread_direction_deg"` // [0, 360)
	Opacity            float64   `json:"opacity"`              // [0.1, 0.8]
	ColorClass         string    `json:"color_class"`
	AffectedAreaKm2    *float64  `json:"affected_area_km2,omitempty"`
	MaxConcentration   *float64  `json:"max_concentration,omitempty"` // мг/л
	CalculatedAt       time.Time `json:"calculated_at"`
}

// TicketState - состояние расчета дисперсии для одного инцидента
type TicketState string

const (
	TicketIdle     TicketState = "IDLE"
	TicketInFlight TicketState = "IN_FLIGHT"
	TicketDone     TicketState = "DONE"
	TicketFailed   TicketState = "FAILED"
)

// CalculationTicket - учетная запись расчета, по одной на инцидент
type CalculationTicket struct {
	SpillID     uuid.UUID   `json:"spill_id"`
	State       TicketState `json:"state"`
	RequestedAt time.Time   `json:"requested_at"`
}
