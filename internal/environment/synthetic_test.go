package environment

import (
	"testing"
	"time"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeSnapshot_Deterministic(t *testing.T) {
	// Подготовка
	loc := models.Location{Latitude: 45, Longitude: -120}
	now := time.Date(2026, 7, 15, 6, 0, 0, 0, time.UTC)

	// Действие
	first := synthesizeSnapshot(loc, now)
	second := synthesizeSnapshot(loc, now)

	// Проверки: модель детерминирована и помечена синтетической
	assert.Equal(t, first, second)
	assert.True(t, first.Synthetic)
	// Лето в северном полушарии теплее зимы
	winter := synthesizeSnapshot(loc, time.Date(2026, 1, 15, 6, 0, 0, 0, time.UTC))
	assert.Greater(t, first.Temperature, winter.Temperature)
}
