package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/mineguard/internal/config"
	"github.com/shenikar/mineguard/internal/metrics"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/notify"
	"github.com/shenikar/mineguard/internal/simulation"
	"github.com/sirupsen/logrus"
)

// defaultNearbyRadius радиус поиска опасностей рядом с точкой (в единицах координат)
const defaultNearbyRadius = 0.01

// HazardRepository определяет контракт для работы с хранилищем опасностей
type HazardRepository interface {
	Create(ctx context.Context, hazard *models.Hazard) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hazard, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.HazardStatus) (*models.Hazard, error)
	List(ctx context.Context, limit int) ([]*models.Hazard, error)
	ListByStatuses(ctx context.Context, statuses []models.HazardStatus) ([]*models.Hazard, error)
	ListByReporter(ctx context.Context, reporter string) ([]*models.Hazard, error)
	ListBySector(ctx context.Context, sector string) ([]*models.Hazard, error)
	ListNear(ctx context.Context, lat, lng, radius float64) ([]*models.Hazard, error)
	GetHazardFromCache(ctx context.Context, id uuid.UUID) (*models.Hazard, error)
	SetHazardCache(ctx context.Context, hazard *models.Hazard) error
	InvalidateHazardCache(ctx context.Context, id uuid.UUID) error
}

// WorkerDirectory источник списка сотрудников и их позиций
type WorkerDirectory interface {
	ListWorkers(ctx context.Context) ([]models.Worker, error)
}

// HazardService определяет контракт бизнес-логики работы с опасностями
type HazardService interface {
	ReportHazard(ctx context.Context, hazard *models.Hazard) error
	GetHazard(ctx context.Context, id uuid.UUID) (*models.Hazard, error)
	ListHazards(ctx context.Context, limit int) ([]*models.Hazard, error)
	ListActiveHazards(ctx context.Context) ([]*models.Hazard, error)
	ListByWorker(ctx context.Context, workerID string) ([]*models.Hazard, error)
	ListBySector(ctx context.Context, sector string) ([]*models.Hazard, error)
	ListNearby(ctx context.Context, lat, lng, radius float64) ([]*models.Hazard, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Hazard, error)
	Simulate(ctx context.Context, id uuid.UUID, elapsedSeconds *float64) (*simulation.Report, error)
	SimulationFrames(ctx context.Context, id uuid.UUID, totalSeconds, fps int) ([]simulation.Frame, error)
	ListWorkers(ctx context.Context) ([]models.Worker, error)
}

type hazardService struct {
	repo      HazardRepository
	workers   WorkerDirectory
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewHazardService(repo HazardRepository, workers WorkerDirectory, publisher notify.Publisher, logger *logrus.Logger, cfg *config.Config) HazardService {
	return &hazardService{
		repo:      repo,
		workers:   workers,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// ReportHazard проверяет и сохраняет новое сообщение об опасности
func (s *hazardService) ReportHazard(ctx context.Context, hazard *models.Hazard) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "ReportHazard",
		"type":    hazard.Type,
		"worker":  hazard.ReportedBy,
	})
	log.Info("Attempting to report a new hazard")

	if hazard.Type == "" || hazard.ReportedBy == "" {
		log.Warn("Hazard report is missing required fields")
		return fmt.Errorf("service: could not report hazard: %w", models.ErrMissingFields)
	}
	if hazard.Severity == "" {
		hazard.Severity = models.SeverityMedium
	}
	if !hazard.Severity.IsValid() {
		log.WithField("severity", hazard.Severity).Warn("Hazard report has invalid severity")
		return fmt.Errorf("service: could not report hazard: %w: %q", models.ErrInvalidSeverity, hazard.Severity)
	}
	if hazard.Source == "" {
		hazard.Source = models.SourceWorker
	}
	hazard.Status = models.StatusPending

	if err := s.repo.Create(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to create hazard in repository")
		return fmt.Errorf("service: could not create hazard: %w", err)
	}

	metrics.HazardsCreated.WithLabelValues(string(hazard.Type), string(hazard.Severity), string(hazard.Source)).Inc()
	log.WithField("hazard_id", hazard.ID).Info("Hazard reported successfully")

	s.publish(ctx, log, notify.EventNewHazard, hazard)
	return nil
}

// GetHazard получает опасность по ID, сначала из кеша
func (s *hazardService) GetHazard(ctx context.Context, id uuid.UUID) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "GetHazard",
		"hazard_id": id,
	})
	log.Debug("Fetching hazard by ID")

	cached, err := s.repo.GetHazardFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read hazard from cache")
	}
	if cached != nil {
		log.Debug("Hazard served from cache")
		return cached, nil
	}

	hazard, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hazard from repository")
		return nil, fmt.Errorf("service: could not get hazard: %w", err)
	}

	if err := s.repo.SetHazardCache(ctx, hazard); err != nil {
		log.WithError(err).Warn("Failed to cache hazard")
	}
	return hazard, nil
}

// ListHazards возвращает последние опасности
func (s *hazardService) ListHazards(ctx context.Context, limit int) ([]*models.Hazard, error) {
	if limit < 1 || limit > s.cfg.HazardListLimit*10 {
		limit = s.cfg.HazardListLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "ListHazards",
		"limit":   limit,
	})

	hazards, err := s.repo.List(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list hazards from repository")
		return nil, fmt.Errorf("service: could not list hazards: %w", err)
	}

	log.WithField("count", len(hazards)).Debug("Hazards listed successfully")
	return hazards, nil
}

// ListActiveHazards возвращает неразрешенные опасности
func (s *hazardService) ListActiveHazards(ctx context.Context) ([]*models.Hazard, error) {
	hazards, err := s.repo.ListByStatuses(ctx, models.ActiveStatuses)
	if err != nil {
		s.logger.WithField("method", "ListActiveHazards").WithError(err).Error("Failed to list active hazards")
		return nil, fmt.Errorf("service: could not list active hazards: %w", err)
	}
	return hazards, nil
}

// ListByWorker возвращает опасности, о которых сообщил сотрудник или датчик
func (s *hazardService) ListByWorker(ctx context.Context, workerID string) ([]*models.Hazard, error) {
	hazards, err := s.repo.ListByReporter(ctx, workerID)
	if err != nil {
		s.logger.WithField("method", "ListByWorker").WithError(err).Error("Failed to list hazards by worker")
		return nil, fmt.Errorf("service: could not list hazards by worker: %w", err)
	}
	return hazards, nil
}

// ListBySector возвращает опасности на участке
func (s *hazardService) ListBySector(ctx context.Context, sector string) ([]*models.Hazard, error) {
	hazards, err := s.repo.ListBySector(ctx, sector)
	if err != nil {
		s.logger.WithField("method", "ListBySector").WithError(err).Error("Failed to list hazards by sector")
		return nil, fmt.Errorf("service: could not list hazards by sector: %w", err)
	}
	return hazards, nil
}

// ListNearby возвращает опасности в квадрате со стороной 2*radius вокруг точки
func (s *hazardService) ListNearby(ctx context.Context, lat, lng, radius float64) ([]*models.Hazard, error) {
	if radius <= 0 {
		radius = defaultNearbyRadius
	}
	hazards, err := s.repo.ListNear(ctx, lat, lng, radius)
	if err != nil {
		s.logger.WithField("method", "ListNearby").WithError(err).Error("Failed to list hazards near location")
		return nil, fmt.Errorf("service: could not list nearby hazards: %w", err)
	}
	return hazards, nil
}

// statusEvents дополнительные события для панелей диспетчеров
var statusEvents = map[models.HazardStatus]string{
	models.StatusAcknowledged: notify.EventHazardAcknowledged,
	models.StatusEscalated:    notify.EventHazardEscalated,
	models.StatusResolved:     notify.EventHazardResolved,
}

// SetStatus меняет статус опасности. Переходы не ограничиваются: допустим любой из четырех статусов
func (s *hazardService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "SetStatus",
		"hazard_id": id,
		"status":    status,
	})
	log.Info("Attempting to update hazard status")

	newStatus := models.HazardStatus(status)
	if !newStatus.IsValid() {
		log.Warn("Invalid hazard status")
		return nil, fmt.Errorf("service: %w: %q", models.ErrInvalidStatus, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		log.WithError(err).Warn("Failed to update hazard status in repository")
		return nil, fmt.Errorf("service: could not update hazard status: %w", err)
	}

	if err := s.repo.InvalidateHazardCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hazard cache")
	}

	metrics.HazardStatusUpdates.WithLabelValues(status).Inc()
	log.Info("Hazard status updated successfully")

	s.publish(ctx, log, notify.EventHazardUpdated, updated)
	if name, ok := statusEvents[newStatus]; ok {
		s.publish(ctx, log, name, map[string]any{
			"hazard_id": updated.ID,
			"status":    updated.Status,
		})
	}
	return updated, nil
}

// Simulate рассчитывает зоны, затронутых сотрудников и маршрут эвакуации.
// Если elapsedSeconds не задан, используется время с момента создания опасности.
func (s *hazardService) Simulate(ctx context.Context, id uuid.UUID, elapsedSeconds *float64) (*simulation.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "Simulate",
		"hazard_id": id,
	})

	hazard, err := s.GetHazard(ctx, id)
	if err != nil {
		return nil, err
	}
	workers, err := s.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}

	elapsed := simulation.ElapsedSeconds(hazard.CreatedAt, s.now())
	if elapsedSeconds != nil {
		elapsed = max(*elapsedSeconds, 0)
	}

	report := simulation.NewReport(hazard, workers, elapsed)
	metrics.AffectedWorkers.WithLabelValues(string(models.SeverityCritical)).Observe(float64(len(report.AffectedWorkers.Critical)))
	metrics.AffectedWorkers.WithLabelValues(string(models.SeverityHigh)).Observe(float64(len(report.AffectedWorkers.High)))
	metrics.AffectedWorkers.WithLabelValues(string(models.SeverityMedium)).Observe(float64(len(report.AffectedWorkers.Medium)))

	log.WithFields(logrus.Fields{
		"simulation_time": elapsed,
		"affected":        report.TotalAffectedWorkers,
	}).Debug("Simulation computed")
	return report, nil
}

// SimulationFrames строит кадры анимации распространения опасности
func (s *hazardService) SimulationFrames(ctx context.Context, id uuid.UUID, totalSeconds, fps int) ([]simulation.Frame, error) {
	if totalSeconds <= 0 {
		totalSeconds = s.cfg.SimulationDuration
	}
	if fps <= 0 {
		fps = s.cfg.SimulationFPS
	}

	hazard, err := s.GetHazard(ctx, id)
	if err != nil {
		return nil, err
	}
	workers, err := s.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}

	frames := slices.Collect(simulation.Frames(hazard.Location, hazard.Type, workers, totalSeconds, fps))
	s.logger.WithFields(logrus.Fields{
		"method":    "SimulationFrames",
		"hazard_id": id,
		"frames":    len(frames),
	}).Debug("Simulation frames generated")
	return frames, nil
}

// ListWorkers возвращает сотрудников из справочника
func (s *hazardService) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	workers, err := s.workers.ListWorkers(ctx)
	if err != nil {
		s.logger.WithField("method", "ListWorkers").WithError(err).Error("Failed to load workers")
		return nil, fmt.Errorf("service: could not list workers: %w", err)
	}
	return workers, nil
}

// publish отправляет событие без влияния на результат операции
func (s *hazardService) publish(ctx context.Context, log *logrus.Entry, name string, payload any) {
	if err := s.publisher.Publish(ctx, notify.NewEvent(name, payload)); err != nil {
		log.WithError(err).WithField("event", name).Warn("Failed to publish event")
	}
}
