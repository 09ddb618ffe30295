package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления разливами
	spills := api.Group("/spills")
	{
		spills.POST("", h.createSpill)
		spills.GET("", h.listSpills)
		spills.GET("/:id", h.getSpill)
		spills.PUT("/:id/status", h.updateSpillStatus)
		spills.POST("/:id/recalculate", h.recalculateSpill)
	}

	// Маршрут аварийной обстановки
	api.GET("/emergency", h.getEmergency)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
