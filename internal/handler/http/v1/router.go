package v1

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/hazard-reports", h.reportHazard)

	hazards := api.Group("/hazards")
	{
		hazards.GET("", h.listHazards)
		hazards.GET("/active", h.listActiveHazards)
		hazards.GET("/nearby", h.listNearbyHazards)
		hazards.GET("/sector/:sector", h.listSectorHazards)
		hazards.GET("/worker/:workerId", h.listWorkerHazards)
		hazards.GET("/:id", h.getHazard)
		// Смена статуса доступна только с API ключом
		hazards.PUT("/:id/status", APIKeyAuthMiddleware(h.cfg, h.logger), h.updateHazardStatus)
		hazards.GET("/:id/simulation", h.getSimulation)
		hazards.GET("/:id/simulation/frames", h.getSimulationFrames)
	}

	sensors := api.Group("/sensor-data")
	{
		limiter := RateLimitMiddleware(rate.Limit(h.cfg.SensorRateLimit), h.cfg.SensorRateBurst, h.logger)
		sensors.POST("", limiter, h.ingestSensorData)
		sensors.GET("/recent", h.recentSensorData)
	}

	api.GET("/workers", h.listWorkers)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
