package environment

import (
	"math"
	"time"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

// Период полусуточного прилива в часах
const semidiurnalPeriodHours = 12.42

// synthesizeSnapshot строит снимок-заменитель, когда внешние источники
// недоступны: простая сезонная модель температуры по широте, умеренный
// западный ветер и синусоидальный полусуточный прилив. Результат всегда
// помечен как синтетический.
func synthesizeSnapshot(loc models.Location, now time.Time) *models.EnvironmentalSnapshot {
	// Теплее к экватору, сезонный ход с пиком в середине июля
	// (для южного полушария - в противофазе)
	latFactor := 1 - math.Abs(loc.Latitude)/90
	dayOfYear := float64(now.YearDay())
	season := math.Cos(2 * math.Pi * (dayOfYear - 196) / 365.25)
	if loc.Latitude < 0 {
		season = -season
	}
	temperature := -5 + 28*latFactor + 8*season

	// Приливная фаза от начала суток
	hourOfDay := float64(now.Hour()) + float64(now.Minute())/60
	tidePhase := 2 * math.Pi * hourOfDay / semidiurnalPeriodHours

	return &models.EnvironmentalSnapshot{
		Location:         loc,
		WindSpeed:        5.0,
		WindDirection:    270.0,
		Temperature:      temperature,
		CurrentSpeed:     0.5 + 0.3*math.Abs(math.Cos(tidePhase)),
		CurrentDirection: 180 + 45*math.Sin(tidePhase),
		TideHeight:       2.0 * math.Sin(tidePhase),
		Synthetic:        true,
		CapturedAt:       now,
	}
}
