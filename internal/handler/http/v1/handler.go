package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/config"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	spillService service.SpillService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(spillService service.SpillService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		spillService: spillService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Create a new spill
// @Description Register a new chemical spill incident.
// @Tags Spills
// @Accept json
// @Produce json
// @Param spill body CreateSpillRequest true "Spill creation request"
// @Success 201 {object} SpillResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 502 {object} map[string]string "Upstream collection unavailable"
// @Router /spills [post]
func (h *Handler) createSpill(c *gin.Context) {
	var input CreateSpillRequest
	log := h.logger.WithField("method", "createSpill")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToSpillModel(input)
	created, err := h.spillService.CreateSpill(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to create spill in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to register spill upstream"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSpillResponse(created, true))
}

// @Summary Get a list of spills
// @Description Get all tracked spills with their dispersion estimates.
// @Tags Spills
// @Accept json
// @Produce json
// @Success 200 {array} SpillResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /spills [get]
func (h *Handler) listSpills(c *gin.Context) {
	log := h.logger.WithField("method", "listSpills")

	views, err := h.spillService.ListSpills(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list spills from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ViewsToSpillResponses(views))
}

// @Summary Get spill by ID
// @Description Get a single spill with its dispersion estimate by ID.
// @Tags Spills
// @Accept json
// @Produce json
// @Param id path string true "Spill ID"
// @Success 200 {object} SpillResponse
// @Failure 400 {object} map[string]string "Invalid spill ID"
// @Failure 404 {object} map[string]string "Spill not found"
// @Router /spills/{id} [get]
func (h *Handler) getSpill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spill ID"})
		return
	}
	log := h.logger.WithField("method", "getSpill").WithField("id", id)

	view, err := h.spillService.GetSpill(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get spill from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "spill not found"})
		return
	}
	c.JSON(http.StatusOK, ViewToSpillResponse(view))
}

// @Summary Update spill status
// @Description Change the lifecycle status of a spill. Backward transitions require the correction flag.
// @Tags Spills
// @Accept json
// @Produce json
// @Param id path string true "Spill ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 {object} SpillResponse
// @Failure 400 {object} map[string]string "Invalid spill ID or request body"
// @Failure 404 {object} map[string]string "Spill not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /spills/{id}/status [put]
func (h *Handler) updateSpillStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spill ID"})
		return
	}
	log := h.logger.WithField("method", "updateSpillStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spill, err := h.spillService.UpdateStatus(c.Request.Context(), id, models.SpillStatus(input.Status), input.Correction)
	if err != nil {
		if errors.Is(err, service.ErrSpillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "spill not found"})
			return
		}
		log.WithError(err).Error("Failed to update spill status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSpillResponse(spill, false))
}

// @Summary Force recalculation
// @Description Force a new dispersion calculation for a spill. Returns accepted=false when a calculation is already in flight.
// @Tags Spills
// @Accept json
// @Produce json
// @Param id path string true "Spill ID"
// @Success 200 {object} RecalculateResponse
// @Failure 400 {object} map[string]string "Invalid spill ID"
// @Failure 404 {object} map[string]string "Spill not found"
// @Router /spills/{id}/recalculate [post]
func (h *Handler) recalculateSpill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spill ID"})
		return
	}
	log := h.logger.WithField("method", "recalculateSpill").WithField("id", id)

	accepted, err := h.spillService.Recalculate(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to request recalculation")
		c.JSON(http.StatusNotFound, gin.H{"error": "spill not found"})
		return
	}
	c.JSON(http.StatusOK, RecalculateResponse{Accepted: accepted})
}

// @Summary Get emergency status
// @Description Get the current count of critical spills and the emergency message.
// @Tags Emergency
// @Accept json
// @Produce json
// @Success 200 {object} EmergencyResponse
// @Router /emergency [get]
func (h *Handler) getEmergency(c *gin.Context) {
	status := h.spillService.Emergency(c.Request.Context())
	c.JSON(http.StatusOK, EmergencyResponse{
		CriticalCount: status.CriticalCount,
		Message:       status.Message,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
