package service

import (
	"context"
	"fmt"

	"github.com/shenikar/mineguard/internal/metrics"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/notify"
	"github.com/shenikar/mineguard/internal/simulation"
	"github.com/sirupsen/logrus"
)

// Значения по умолчанию для отсутствующих показаний
const (
	DefaultCO2         = 400.0
	DefaultTemperature = 25.0
	DefaultHumidity    = 60.0
	DefaultSensorID    = "SENSOR_01"
)

// SensorRepository определяет контракт для журнала показаний датчиков
type SensorRepository interface {
	SaveReading(ctx context.Context, reading *models.SensorReading) error
	RecentReadings(ctx context.Context, limit int) ([]*models.SensorReading, error)
}

// SensorService определяет контракт обработки телеметрии
type SensorService interface {
	Ingest(ctx context.Context, reading *models.SensorReading) (*models.IngestResult, error)
	RecentReadings(ctx context.Context, limit int) ([]*models.SensorReading, error)
}

type sensorService struct {
	repo      SensorRepository
	hazards   HazardService
	publisher notify.Publisher
	logger    *logrus.Logger
	limit     int
}

func NewSensorService(repo SensorRepository, hazards HazardService, publisher notify.Publisher, logger *logrus.Logger, readingsLimit int) SensorService {
	return &sensorService{
		repo:      repo,
		hazards:   hazards,
		publisher: publisher,
		logger:    logger,
		limit:     readingsLimit,
	}
}

// Ingest сохраняет показания и, если классификатор обнаружил опасность, создает ее
func (s *sensorService) Ingest(ctx context.Context, reading *models.SensorReading) (*models.IngestResult, error) {
	if reading.SourceID == "" {
		reading.SourceID = DefaultSensorID
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "sensor",
		"method":  "Ingest",
		"source":  reading.SourceID,
		"sector":  reading.Location.Sector,
	})

	if err := s.repo.SaveReading(ctx, reading); err != nil {
		log.WithError(err).Error("Failed to save sensor reading")
		return nil, fmt.Errorf("service: could not save sensor reading: %w", err)
	}

	result := &models.IngestResult{Reading: reading}
	classification, detected := simulation.Classify(reading.CO2, reading.Temperature, reading.Humidity)
	if !detected {
		metrics.SensorReadings.WithLabelValues("normal").Inc()
		log.Debug("Sensor reading logged, all values normal")
		return result, nil
	}
	metrics.SensorReadings.WithLabelValues("hazard").Inc()

	hazard := &models.Hazard{
		Type:       classification.Type,
		Severity:   classification.Severity,
		Location:   reading.Location,
		ReportedBy: reading.SourceID,
		Source:     models.SourceIoTSensor,
		Description: fmt.Sprintf("Auto-detected: CO2=%sppm, Temp=%s°C, Humidity=%s%%",
			formatReading(reading.CO2), formatReading(reading.Temperature), formatReading(reading.Humidity)),
		SensorData: &models.SensorSnapshot{
			CO2:         reading.CO2,
			Temperature: reading.Temperature,
			Humidity:    reading.Humidity,
		},
	}
	if err := s.hazards.ReportHazard(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to create hazard from sensor reading")
		return nil, fmt.Errorf("service: could not create hazard from sensor reading: %w", err)
	}

	log.WithFields(logrus.Fields{
		"hazard_id": hazard.ID,
		"type":      hazard.Type,
		"severity":  hazard.Severity,
	}).Warn("Hazard detected by sensor")

	if err := s.publisher.Publish(ctx, notify.NewEvent(notify.EventStartSimulation, map[string]any{"hazard_id": hazard.ID})); err != nil {
		log.WithError(err).Warn("Failed to publish start-simulation event")
	}

	result.HazardDetected = true
	result.Hazard = hazard
	return result, nil
}

// RecentReadings возвращает последние показания
func (s *sensorService) RecentReadings(ctx context.Context, limit int) ([]*models.SensorReading, error) {
	if limit < 1 || limit > s.limit*10 {
		limit = s.limit
	}
	readings, err := s.repo.RecentReadings(ctx, limit)
	if err != nil {
		s.logger.WithField("method", "RecentReadings").WithError(err).Error("Failed to list sensor readings")
		return nil, fmt.Errorf("service: could not list sensor readings: %w", err)
	}
	return readings, nil
}

func formatReading(v float64) string {
	return fmt.Sprintf("%g", v)
}
