package estimator

import (
	"math"
	"strings"
	"time"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

// Границы результата. Оценка никогда не выходит за эти пределы.
const (
	MinRadiusMeters = 100.0
	MaxRadiusMeters = 10000.0
	MinOpacity      = 0.1
	MaxOpacity      = 0.8
)

// Безопасные значения по умолчанию при вырожденных входных данных
const (
	fallbackRadius    = 500.0
	fallbackDirection = 0.0
	fallbackOpacity   = 0.5
)

// Категории химикатов. Порядок проверки фиксирован: нефть, кислоты/токсины, газы.
var chemicalCategories = []struct {
	keywords []string
	factor   float64
	color    string
}{
	{[]string{"oil", "petroleum", "crude", "diesel", "fuel"}, 1.5, "brown"},
	{[]string{"acid", "toxic"}, 0.8, "purple"},
	{[]string{"gas", "volatile", "benzene"}, 2.0, "yellow"},
}

const defaultChemicalFactor = 1.0
const defaultColorClass = "blue"

// Estimate - чистая функция, вычисляющая ограниченную оценку распространения
// разлива по инциденту и снимку окружающей среды. Контракт: результат никогда
// не содержит нечисловых значений и не выходит за границы диапазонов.
func Estimate(spill *models.Spill, snapshot *models.EnvironmentalSnapshot) models.DispersionEstimate {
	now := time.Now().UTC()
	color := colorClass(spill)

	// Бесконечность во входных данных пережила бы независимые clamp-ы,
	// поэтому вырожденность проверяется до вычислений.
	if !isFinite(spill.Volume) || !isFinite(snapshot.WindSpeed) || !isFinite(snapshot.WindDirection) ||
		!isFinite(snapshot.Temperature) || !isFinite(snapshot.CurrentSpeed) || !isFinite(snapshot.CurrentDirection) {
		return safeDefault(spill, color, now)
	}

	baseRadius := math.Max(MinRadiusMeters, math.Sqrt(spill.Volume)*2)

	// Каждый множитель ограничивается отдельно, чтобы искаженные данные
	// одного источника не раздували итоговый радиус.
	windEffect := clamp(snapshot.WindSpeed/10, 0.1, 2.0)
	currentEffect := clamp(snapshot.CurrentSpeed*100, 0.1, 1.5)
	tempEffect := clamp((snapshot.Temperature-15)/20, 0.5, 1.5)

	factor := chemicalFactor(spill.ChemicalType)
	radius := clamp(baseRadius*(1+windEffect+currentEffect+tempEffect)*factor, MinRadiusMeters, MaxRadiusMeters)

	// Среднее арифметическое двух азимутов. Известное упрощение: вблизи
	// перехода 0°/360° результат некорректен (350° и 10° дают 180°, а не 0°).
	direction := normalizeDegrees((snapshot.WindDirection + snapshot.CurrentDirection) / 2)

	opacity := clamp(0.3+spill.Volume/10000, MinOpacity, MaxOpacity)

	if !isFinite(radius) || !isFinite(direction) || !isFinite(opacity) {
		return safeDefault(spill, color, now)
	}

	return models.DispersionEstimate{
		SpillID:            spill.ID,
		RadiusMeters:       radius,
		SpreadDirectionDeg: direction,
		Opacity:            opacity,
		ColorClass:         color,
		CalculatedAt:       now,
	}
}

// safeDefault возвращает фиксированную безопасную оценку вместо некорректной геометрии
func safeDefault(spill *models.Spill, color string, now time.Time) models.DispersionEstimate {
	return models.DispersionEstimate{
		SpillID:            spill.ID,
		RadiusMeters:       fallbackRadius,
		SpreadDirectionDeg: fallbackDirection,
		Opacity:            fallbackOpacity,
		ColorClass:         color,
		CalculatedAt:       now,
	}
}

// chemicalFactor подбирает множитель по первому совпадению ключевого слова
func chemicalFactor(chemicalType string) float64 {
	lowered := strings.ToLower(chemicalType)
	for _, cat := range chemicalCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lowered, kw) {
				return cat.factor
			}
		}
	}
	return defaultChemicalFactor
}

// colorClass выбирает цвет сначала по приоритету, затем по категории химиката
func colorClass(spill *models.Spill) string {
	switch spill.Priority {
	case models.PriorityCritical:
		return "red"
	case models.PriorityHigh:
		return "orange"
	}

	lowered := strings.ToLower(spill.ChemicalType)
	for _, cat := range chemicalCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lowered, kw) {
				return cat.color
			}
		}
	}
	return defaultColorClass
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// normalizeDegrees приводит угол к диапазону [0, 360)
func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
