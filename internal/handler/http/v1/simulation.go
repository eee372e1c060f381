package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/mineguard/internal/simulation"
)

// @Summary Get hazard spread simulation
// @Description Danger zones, affected workers and evacuation route. Time defaults to seconds since the report.
// @Tags Simulation
// @Produce json
// @Param id path string true "Hazard ID"
// @Param time query number false "Simulation time in seconds"
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID or time"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/simulation [get]
func (h *Handler) getSimulation(c *gin.Context) {
	id, ok := parseHazardID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSimulation").WithField("id", id)

	var override *float64
	if raw := c.Query("time"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || t < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time"})
			return
		}
		override = &t
	}

	report, err := h.hazardService.Simulate(c.Request.Context(), id, override)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReportToSimulationResponse(report))
}

// @Summary Get simulation animation frames
// @Description Frames from 0 up to duration seconds (exclusive), one every fps seconds
// @Tags Simulation
// @Produce json
// @Param id path string true "Hazard ID"
// @Param duration query int false "Total seconds"
// @Param fps query int false "Frames per second"
// @Success 200 {object} SimulationFramesResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID, duration or fps"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/simulation/frames [get]
func (h *Handler) getSimulationFrames(c *gin.Context) {
	id, ok := parseHazardID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSimulationFrames").WithField("id", id)

	duration, err := queryInt(c, "duration", h.cfg.SimulationDuration)
	if err != nil || duration < 0 || duration > maxSimulationDuration {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
		return
	}
	fps, err := queryInt(c, "fps", h.cfg.SimulationFPS)
	if err != nil || fps < 0 || fps > maxSimulationFPS {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fps"})
		return
	}

	frames, err := h.hazardService.SimulationFrames(c.Request.Context(), id, duration, fps)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SimulationFramesResponse{
		HazardID: id,
		Duration: duration,
		FPS:      fps,
		Step:     simulation.FrameStep(fps),
		Frames:   frames,
	})
}
