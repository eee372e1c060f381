package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/mineguard/internal/config"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	maxSimulationDuration = 3600
	maxSimulationFPS      = 60
)

type Handler struct {
	hazardService service.HazardService
	sensorService service.SensorService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(hazardService service.HazardService, sensorService service.SensorService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		hazardService: hazardService,
		sensorService: sensorService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// validationMessages публичные тексты ошибок валидации сервиса
var validationMessages = []struct {
	err error
	msg string
}{
	{models.ErrMissingFields, "missing required fields"},
	{models.ErrInvalidSeverity, "invalid severity"},
	{models.ErrInvalidStatus, "invalid status"},
}

// respondServiceError переводит ошибку сервиса в HTTP статус
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Hazard not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "hazard not found"})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Service rejected request")
		msg := "invalid request"
		for _, v := range validationMessages {
			if errors.Is(err, v.err) {
				msg = v.msg
				break
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseHazardID читает UUID из пути; при ошибке отвечает 400
func parseHazardID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt читает необязательный целочисленный параметр запроса
func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// @Summary Get worker roster
// @Description Get all workers with their last known positions
// @Tags Workers
// @Produce json
// @Success 200 {array} models.Worker
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /workers [get]
func (h *Handler) listWorkers(c *gin.Context) {
	log := h.logger.WithField("method", "listWorkers")

	workers, err := h.hazardService.ListWorkers(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "MineGuard Backend is running"})
}
