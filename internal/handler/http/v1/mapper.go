package v1

import (
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/service"
)

// DTOToSpillModel преобразует DTO регистрации в доменную модель
func DTOToSpillModel(dto CreateSpillRequest) *models.Spill {
	spill := &models.Spill{
		Name:            dto.Name,
		ChemicalType:    dto.ChemicalType,
		CASNumber:       dto.CASNumber,
		Source:          dto.Source,
		Volume:          dto.Volume,
		VolumeEstimated: dto.VolumeEstimated,
		Location: models.Location{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		},
		WaterDepth:  dto.WaterDepth,
		HazardClass: dto.HazardClass,
	}
	if dto.Priority != "" {
		spill.Priority = models.Priority(dto.Priority)
	}
	return spill
}

// EstimateToResponse преобразует оценку дисперсии в DTO для ответа
func EstimateToResponse(est *models.DispersionEstimate) *DispersionEstimateResponse {
	if est == nil {
		return nil
	}
	return &DispersionEstimateResponse{
		RadiusMeters:       est.RadiusMeters,
		SpreadDirectionDeg: est.SpreadDirectionDeg,
		Opacity:            est.Opacity,
		ColorClass:         est.ColorClass,
		AffectedAreaKm2:    est.AffectedAreaKm2,
		MaxConcentration:   est.MaxConcentration,
		CalculatedAt:       est.CalculatedAt,
	}
}

// ModelToSpillResponse преобразует доменную модель в DTO для ответа
func ModelToSpillResponse(spill *models.Spill, inProgress bool) *SpillResponse {
	return &SpillResponse{
		ID:                    spill.ID,
		Name:                  spill.Name,
		ChemicalType:          spill.ChemicalType,
		CASNumber:             spill.CASNumber,
		Source:                spill.Source,
		Priority:              string(spill.Priority),
		Status:                string(spill.Status),
		Volume:                spill.Volume,
		VolumeEstimated:       spill.VolumeEstimated,
		Latitude:              spill.Location.Latitude,
		Longitude:             spill.Location.Longitude,
		WaterDepth:            spill.WaterDepth,
		HazardClass:           spill.HazardClass,
		SpillTime:             spill.SpillTime,
		UpdatedAt:             spill.UpdatedAt,
		DispersionEstimate:    EstimateToResponse(spill.DispersionEstimate),
		LastCalculatedAt:      spill.LastCalculatedAt,
		CalculationInProgress: inProgress,
	}
}

// ViewToSpillResponse преобразует представление сервиса в DTO для ответа
func ViewToSpillResponse(view *service.SpillView) *SpillResponse {
	return ModelToSpillResponse(view.Spill, view.CalculationInProgress)
}

// ViewsToSpillResponses преобразует слайс представлений в слайс DTO
func ViewsToSpillResponses(views []*service.SpillView) []*SpillResponse {
	responses := make([]*SpillResponse, len(views))
	for i, view := range views {
		responses[i] = ViewToSpillResponse(view)
	}
	return responses
}
