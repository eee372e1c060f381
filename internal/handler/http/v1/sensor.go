package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Ingest sensor telemetry
// @Description Log a reading and auto-create a hazard when thresholds are exceeded. Missing values are treated as normal.
// @Tags Sensors
// @Accept json
// @Produce json
// @Param reading body SensorDataRequest true "Sensor reading"
// @Success 200 {object} SensorDataResponse "Reading logged, all values normal"
// @Success 201 {object} SensorDataResponse "Hazard detected and created"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensor-data [post]
func (h *Handler) ingestSensorData(c *gin.Context) {
	var input SensorDataRequest
	log := h.logger.WithField("method", "ingestSensorData")

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

	result, err := h.sensorService.Ingest(c.Request.Context(), SensorRequestToReadingModel(input))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	if !result.HazardDetected {
		c.JSON(http.StatusOK, SensorDataResponse{
			Success: true,
			Message: "Sensor data logged. All readings normal.",
		})
		return
	}
	c.JSON(http.StatusCreated, SensorDataResponse{
		Success:        true,
		HazardDetected: true,
		HazardType:     string(result.Hazard.Type),
		Severity:       string(result.Hazard.Severity),
		HazardID:       &result.Hazard.ID,
		Message:        fmt.Sprintf("%s detected!", result.Hazard.Type),
	})
}

// @Summary Get recent sensor readings
// @Tags Sensors
// @Produce json
// @Param limit query int false "Maximum number of readings"
// @Success 200 {array} models.SensorReading
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensor-data/recent [get]
func (h *Handler) recentSensorData(c *gin.Context) {
	log := h.logger.WithField("method", "recentSensorData")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	readings, err := h.sensorService.RecentReadings(c.Request.Context(), limit)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}
