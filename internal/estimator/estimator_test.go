package estimator

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot() *models.EnvironmentalSnapshot {
	return &models.EnvironmentalSnapshot{
		WindSpeed:        5,
		WindDirection:    270,
		Temperature:      20,
		CurrentSpeed:     0.003,
		CurrentDirection: 180,
		TideHeight:       1.2,
	}
}

func TestEstimate_CrudeOilExample(t *testing.T) {
	// Подготовка
	spill := &models.Spill{
		ID:           uuid.New(),
		Name:         "Разлив у терминала",
		ChemicalType: "Crude Oil",
		Priority:     models.PriorityHigh,
		Volume:       5000,
	}
	snapshot := validSnapshot()

	// Действие
	est := Estimate(spill, snapshot)

	// Проверки
	// baseRadius = sqrt(5000)*2 = 141.42, множитель = 1+0.5+0.003*100+0.25... см. формулу:
	// windEffect=0.5, currentEffect=0.3, tempEffect=0.25 -> clamp до 0.5 снизу? нет: (20-15)/20=0.25 -> clamp(0.5..1.5)=0.5
	// Итог проверяем численно через саму формулу.
	windEffect := 0.5
	currentEffect := 0.3
	tempEffect := 0.5 // (20-15)/20 = 0.25, поднимается нижней границей 0.5
	expected := math.Sqrt(5000) * 2 * (1 + windEffect + currentEffect + tempEffect) * 1.5
	assert.InDelta(t, expected, est.RadiusMeters, 0.01)
	assert.Equal(t, spill.ID, est.SpillID)
	assert.Equal(t, "orange", est.ColorClass) // приоритет HIGH важнее категории
	assert.InDelta(t, 0.8, est.Opacity, 1e-9) // 0.3 + 5000/10000 = 0.8, верхняя граница
	assert.InDelta(t, 225, est.SpreadDirectionDeg, 1e-9)
}

func TestEstimate_BoundedForValidInputs(t *testing.T) {
	// Подготовка: экстремальные, но конечные входные данные
	cases := []struct {
		name   string
		volume float64
		snap   models.EnvironmentalSnapshot
	}{
		{"минимальный объем", 0.001, models.EnvironmentalSnapshot{WindSpeed: 0, Temperature: -40}},
		{"огромный объем", 1e9, models.EnvironmentalSnapshot{WindSpeed: 500, CurrentSpeed: 30, Temperature: 60}},
		{"отрицательный ветер", 100, models.EnvironmentalSnapshot{WindSpeed: -15, CurrentSpeed: -2, Temperature: 15}},
		{"азимуты за пределами круга", 100, models.EnvironmentalSnapshot{WindDirection: 710, CurrentDirection: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spill := &models.Spill{ID: uuid.New(), ChemicalType: "Sulfuric Acid", Volume: tc.volume}

			// Действие
			est := Estimate(spill, &tc.snap)

			// Проверки
			assert.GreaterOrEqual(t, est.RadiusMeters, MinRadiusMeters)
			assert.LessOrEqual(t, est.RadiusMeters, MaxRadiusMeters)
			assert.GreaterOrEqual(t, est.Opacity, MinOpacity)
			assert.LessOrEqual(t, est.Opacity, MaxOpacity)
			assert.GreaterOrEqual(t, est.SpreadDirectionDeg, 0.0)
			assert.Less(t, est.SpreadDirectionDeg, 360.0)
		})
	}
}

func TestEstimate_DegenerateInputsFallBack(t *testing.T) {
	// Подготовка
	spill := &models.Spill{ID: uuid.New(), ChemicalType: "Crude Oil", Volume: 5000}

	cases := []struct {
		name   string
		mutate func(s *models.EnvironmentalSnapshot)
	}{
		{"NaN скорость ветра", func(s *models.EnvironmentalSnapshot) { s.WindSpeed = math.NaN() }},
		{"Inf скорость ветра", func(s *models.EnvironmentalSnapshot) { s.WindSpeed = math.Inf(1) }},
		{"NaN температура", func(s *models.EnvironmentalSnapshot) { s.Temperature = math.NaN() }},
		{"Inf направление течения", func(s *models.EnvironmentalSnapshot) { s.CurrentDirection = math.Inf(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := validSnapshot()
			tc.mutate(snap)

			// Действие
			est := Estimate(spill, snap)

			// Проверки: фиксированный безопасный результат, без NaN/Inf
			require.False(t, math.IsNaN(est.RadiusMeters))
			assert.Equal(t, fallbackRadius, est.RadiusMeters)
			assert.Equal(t, fallbackDirection, est.SpreadDirectionDeg)
			assert.Equal(t, fallbackOpacity, est.Opacity)
			assert.Equal(t, "brown", est.ColorClass) // цвет остается категорийным
		})
	}
}

func TestEstimate_DegenerateVolumeFallsBack(t *testing.T) {
	// Подготовка
	spill := &models.Spill{ID: uuid.New(), ChemicalType: "Chlorine Gas", Volume: math.NaN()}

	// Действие
	est := Estimate(spill, validSnapshot())

	// Проверки
	assert.Equal(t, fallbackRadius, est.RadiusMeters)
	assert.Equal(t, "yellow", est.ColorClass)
}

func TestChemicalFactor_CategoryOrder(t *testing.T) {
	// Порядок категорий фиксирован: нефть, кислоты/токсины, газы
	assert.Equal(t, 1.5, chemicalFactor("Crude Oil"))
	assert.Equal(t, 1.5, chemicalFactor("Diesel Fuel"))
	assert.Equal(t, 0.8, chemicalFactor("Hydrochloric Acid"))
	assert.Equal(t, 0.8, chemicalFactor("Toxic Waste"))
	assert.Equal(t, 2.0, chemicalFactor("Natural Gas"))
	assert.Equal(t, 1.0, chemicalFactor("Fertilizer"))
	// Первое совпадение выигрывает: "toxic oil gas" попадает в нефтяную категорию
	assert.Equal(t, 1.5, chemicalFactor("Toxic Oil Gas"))
	// Регистр не влияет
	assert.Equal(t, 2.0, chemicalFactor("BENZENE"))
}

func TestColorClass_PriorityBeatsCategory(t *testing.T) {
	critical := &models.Spill{Priority: models.PriorityCritical, ChemicalType: "Crude Oil"}
	high := &models.Spill{Priority: models.PriorityHigh, ChemicalType: "Acid"}
	low := &models.Spill{Priority: models.PriorityLow, ChemicalType: "Crude Oil"}
	neutral := &models.Spill{Priority: models.PriorityMedium, ChemicalType: "Fertilizer"}

	assert.Equal(t, "red", colorClass(critical))
	assert.Equal(t, "orange", colorClass(high))
	assert.Equal(t, "brown", colorClass(low))
	assert.Equal(t, "blue", colorClass(neutral))
}
