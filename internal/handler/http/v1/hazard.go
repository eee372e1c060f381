package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Report a hazard
// @Description Worker reports a hazard from the field. Severity defaults to medium.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param hazard body ReportHazardRequest true "Hazard report"
// @Success 201 {object} ReportHazardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazard-reports [post]
func (h *Handler) reportHazard(c *gin.Context) {
	var input ReportHazardRequest
	log := h.logger.WithField("method", "reportHazard")

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

	model := ReportRequestToHazardModel(input)
	if err := h.hazardService.ReportHazard(c.Request.Context(), model); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ReportHazardResponse{
		Success:  true,
		HazardID: model.ID,
		Message:  "Hazard reported successfully",
		Hazard:   ModelToHazardResponse(model),
	})
}

// @Summary Get a list of hazards
// @Description Get the most recent hazards, newest first
// @Tags Hazards
// @Produce json
// @Param limit query int false "Maximum number of hazards"
// @Success 200 {array} HazardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [get]
func (h *Handler) listHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listHazards")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	hazards, err := h.hazardService.ListHazards(c.Request.Context(), limit)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get active hazards
// @Description Get hazards that are not resolved yet
// @Tags Hazards
// @Produce json
// @Success 200 {array} HazardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/active [get]
func (h *Handler) listActiveHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveHazards")

	hazards, err := h.hazardService.ListActiveHazards(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazards near a point
// @Description Get hazards inside a square of +-radius around the point
// @Tags Hazards
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Half side of the search square" default(0.01)
// @Success 200 {array} HazardResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/nearby [get]
func (h *Handler) listNearbyHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listNearbyHazards")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required numbers"})
		return
	}
	var radius float64
	if raw := c.Query("radius"); raw != "" {
		var err error
		if radius, err = strconv.ParseFloat(raw, 64); err != nil || radius < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
	}

	hazards, err := h.hazardService.ListNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazards in a sector
// @Tags Hazards
// @Produce json
// @Param sector path string true "Sector"
// @Success 200 {array} HazardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/sector/{sector} [get]
func (h *Handler) listSectorHazards(c *gin.Context) {
	sector := c.Param("sector")
	log := h.logger.WithField("method", "listSectorHazards").WithField("sector", sector)

	hazards, err := h.hazardService.ListBySector(c.Request.Context(), sector)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazards reported by a worker
// @Description Get hazards reported by a worker or a sensor
// @Tags Hazards
// @Produce json
// @Param workerId path string true "Worker or sensor ID"
// @Success 200 {array} HazardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/worker/{workerId} [get]
func (h *Handler) listWorkerHazards(c *gin.Context) {
	workerID := c.Param("workerId")
	log := h.logger.WithField("method", "listWorkerHazards").WithField("worker", workerID)

	hazards, err := h.hazardService.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazard by ID
// @Tags Hazards
// @Produce json
// @Param id path string true "Hazard ID"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [get]
func (h *Handler) getHazard(c *gin.Context) {
	id, ok := parseHazardID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHazard").WithField("id", id)

	hazard, err := h.hazardService.GetHazard(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard))
}

// @Summary Update hazard status
// @Description Set hazard status to pending, acknowledged, escalated or resolved. Requires API key.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hazard ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/status [put]
func (h *Handler) updateHazardStatus(c *gin.Context) {
	id, ok := parseHazardID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateHazardStatus").WithField("id", id)

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

	hazard, err := h.hazardService.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UpdateStatusResponse{
		Success: true,
		Hazard:  ModelToHazardResponse(hazard),
		Message: fmt.Sprintf("Hazard status updated to %s", hazard.Status),
	})
}
