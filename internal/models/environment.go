package models

import "time"

// EnvironmentalSnapshot - снимок погодных и приливных условий для точки.
// Заменяется целиком при каждом обновлении, частичное слияние не допускается.
type EnvironmentalSnapshot struct {
	Location         Location  `json:"location"`
	WindSpeed        float64   `json:"wind_speed"`        // м/с
	WindDirection    float64   `json:"wind_direction"`    // градусы
	Temperature      float64   `json:"temperature"`       // °C
	CurrentSpeed     float64   `json:"current_speed"`     // м/с
	CurrentDirection float64   `json:"current_direction"` // градусы
	TideHeight       float64   `json:"tide_height"`       // метры
	Synthetic        bool      `json:"synthetic"`         // true, если данные синтезированы при недоступности источника
	CapturedAt       time.Time `json:"captured_at"`
}
