package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/mineguard/internal/config"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/notify"
	notify_mocks "github.com/shenikar/mineguard/internal/notify/mocks"
	"github.com/shenikar/mineguard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreatedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type hazardMocks struct {
	repo      *mocks.MockHazardRepository
	workers   *mocks.MockWorkerDirectory
	publisher *notify_mocks.MockPublisher
}

// newTestHazardService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestHazardService(t *testing.T) (*hazardService, hazardMocks) {
	ctrl := gomock.NewController(t)
	m := hazardMocks{
		repo:      mocks.NewMockHazardRepository(ctrl),
		workers:   mocks.NewMockWorkerDirectory(ctrl),
		publisher: notify_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		HazardListLimit:    50,
		SimulationDuration: 60,
		SimulationFPS:      1,
	}

	service := NewHazardService(m.repo, m.workers, m.publisher, logger, cfg).(*hazardService)
	service.now = func() time.Time { return testCreatedAt.Add(10 * time.Second) }
	return service, m
}

func testWorkers() []models.Worker {
	return []models.Worker{
		{ID: "W001", Name: "John Smith", Role: "Miner", Sector: "A", Lat: 23.0455, Lng: 81.3240},
		{ID: "W004", Name: "Tom Brown", Role: "Supervisor", Sector: "C", Lat: 23.0465, Lng: 81.3250},
	}
}

func testHazard(id uuid.UUID) *models.Hazard {
	return &models.Hazard{
		ID:         id,
		Type:       models.HazardGasLeak,
		Severity:   models.SeverityHigh,
		Location:   models.Location{Lat: 23.045, Lng: 81.325, Sector: "A"},
		ReportedBy: "W001",
		Source:     models.SourceWorker,
		Status:     models.StatusPending,
		CreatedAt:  testCreatedAt,
		UpdatedAt:  testCreatedAt,
	}
}

// eventNamed проверяет имя публикуемого события
func eventNamed(name string) gomock.Matcher {
	return gomock.Cond(func(e notify.Event) bool { return e.Name == name })
}

func TestReportHazard_Success(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	hazard := &models.Hazard{
		Type:       models.HazardFire,
		Location:   models.Location{Lat: 23.045, Lng: 81.325, Sector: "B"},
		ReportedBy: "W002",
	}

	// Ожидания
	m.repo.EXPECT().
		Create(ctx, hazard).
		DoAndReturn(func(_ context.Context, h *models.Hazard) error {
			h.ID = uuid.New()
			return nil
		}).
		Times(1)
	m.publisher.EXPECT().Publish(ctx, eventNamed(notify.EventNewHazard)).Return(nil).Times(1)

	// Действие
	err := service.ReportHazard(ctx, hazard)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, hazard.ID)
	assert.Equal(t, models.StatusPending, hazard.Status)
	assert.Equal(t, models.SeverityMedium, hazard.Severity)
	assert.Equal(t, models.SourceWorker, hazard.Source)
}

func TestReportHazard_PublishFailureIsIgnored(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	hazard := &models.Hazard{Type: models.HazardRockFall, Severity: models.SeverityCritical, ReportedBy: "W003"}

	// Ожидания
	m.repo.EXPECT().Create(ctx, hazard).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("nats down")).Times(1)

	// Действие
	err := service.ReportHazard(ctx, hazard)

	// Проверки
	require.NoError(t, err)
}

func TestReportHazard_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		hazard *models.Hazard
		target error
	}{
		{"missing type", &models.Hazard{ReportedBy: "W001"}, models.ErrMissingFields},
		{"missing reporter", &models.Hazard{Type: models.HazardFire}, models.ErrMissingFields},
		{"bad severity", &models.Hazard{Type: models.HazardFire, ReportedBy: "W001", Severity: "low"}, models.ErrInvalidSeverity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка: репозиторий не должен вызываться
			service, _ := newTestHazardService(t)

			// Действие
			err := service.ReportHazard(context.Background(), tt.hazard)

			// Проверки
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestGetHazard_Success_FromCache(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := testHazard(id)

	// Ожидания
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(expected, nil).Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, id)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, hazard)
}

func TestGetHazard_Success_FromDB(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := testHazard(id)

	// Ожидания
	// 1. Промах кеша
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	m.repo.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	m.repo.EXPECT().SetHazardCache(ctx, expected).Return(nil).Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, id)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, hazard)
}

func TestGetHazard_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(nil, errors.New("redis timeout")).Times(1)
	m.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrHazardNotFound).Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, id)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazard)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListHazards_DefaultLimit(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().List(ctx, 50).Return([]*models.Hazard{testHazard(uuid.New())}, nil).Times(1)

	// Действие
	hazards, err := service.ListHazards(ctx, 0)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, hazards, 1)
}

func TestListActiveHazards(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().ListByStatuses(ctx, models.ActiveStatuses).Return([]*models.Hazard{}, nil).Times(1)

	// Действие
	hazards, err := service.ListActiveHazards(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, hazards)
}

func TestListNearby_DefaultRadius(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().ListNear(ctx, 23.045, 81.325, defaultNearbyRadius).Return(nil, nil).Times(1)

	// Действие
	_, err := service.ListNearby(ctx, 23.045, 81.325, 0)

	// Проверки
	require.NoError(t, err)
}

func TestListByWorker_RepositoryError(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	// Ожидания
	m.repo.EXPECT().ListByReporter(ctx, "W001").Return(nil, dbErr).Times(1)

	// Действие
	_, err := service.ListByWorker(ctx, "W001")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestSetStatus_Success(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()
	updated := testHazard(id)
	updated.Status = models.StatusResolved

	// Ожидания
	m.repo.EXPECT().UpdateStatus(ctx, id, models.StatusResolved).Return(updated, nil).Times(1)
	m.repo.EXPECT().InvalidateHazardCache(ctx, id).Return(nil).Times(1)
	gomock.InOrder(
		m.publisher.EXPECT().Publish(ctx, eventNamed(notify.EventHazardUpdated)).Return(nil),
		m.publisher.EXPECT().Publish(ctx, eventNamed(notify.EventHazardResolved)).Return(nil),
	)

	// Действие
	hazard, err := service.SetStatus(ctx, id, "resolved")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, hazard.Status)
}

func TestSetStatus_BackToPending(t *testing.T) {
	// Подготовка: переходы статусов не ограничены
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()
	updated := testHazard(id)

	// Ожидания: для pending публикуется только hazard-updated
	m.repo.EXPECT().UpdateStatus(ctx, id, models.StatusPending).Return(updated, nil).Times(1)
	m.repo.EXPECT().InvalidateHazardCache(ctx, id).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, eventNamed(notify.EventHazardUpdated)).Return(nil).Times(1)

	// Действие
	_, err := service.SetStatus(ctx, id, "pending")

	// Проверки
	require.NoError(t, err)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	// Подготовка
	service, _ := newTestHazardService(t)

	// Действие
	hazard, err := service.SetStatus(context.Background(), uuid.New(), "closed")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazard)
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSetStatus_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	m.repo.EXPECT().UpdateStatus(ctx, id, models.StatusAcknowledged).Return(nil, models.ErrHazardNotFound).Times(1)

	// Действие
	_, err := service.SetStatus(ctx, id, "acknowledged")

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSimulate_UsesElapsedSinceCreation(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()
	hazard := testHazard(id)

	// Ожидания
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(hazard, nil).Times(1)
	m.workers.EXPECT().ListWorkers(ctx).Return(testWorkers(), nil).Times(1)

	// Действие
	report, err := service.Simulate(ctx, id, nil)

	// Проверки: 10 секунд, утечка газа -> внешний радиус 0.02
	require.NoError(t, err)
	assert.Equal(t, 10.0, report.SimulationTime)
	assert.InDelta(t, 0.02, report.DangerZones[2].Radius, 1e-9)
	assert.Equal(t, 2, report.TotalWorkers)
	assert.Equal(t, 2, report.TotalAffectedWorkers)
	assert.Len(t, report.AffectedWorkers.Critical, 2)
}

func TestSimulate_TimeOverride(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()
	hazard := testHazard(id)
	override := 0.0

	// Ожидания
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(hazard, nil).Times(1)
	m.workers.EXPECT().ListWorkers(ctx).Return(testWorkers(), nil).Times(1)

	// Действие
	report, err := service.Simulate(ctx, id, &override)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, report.SimulationTime)
	assert.Zero(t, report.TotalAffectedWorkers)
	assert.Equal(t, "Move to Sector C via Tunnel 2", report.EvacuationRoute.Direction)
}

func TestSimulate_WorkerDirectoryError(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(testHazard(id), nil).Times(1)
	m.workers.EXPECT().ListWorkers(ctx).Return(nil, errors.New("roster unreadable")).Times(1)

	// Действие
	report, err := service.Simulate(ctx, id, nil)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestSimulationFrames_Defaults(t *testing.T) {
	// Подготовка
	service, m := newTestHazardService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetHazardFromCache(ctx, id).Return(testHazard(id), nil).Times(1)
	m.workers.EXPECT().ListWorkers(ctx).Return(testWorkers(), nil).Times(1)

	// Действие
	frames, err := service.SimulationFrames(ctx, id, 0, 0)

	// Проверки: 60 секунд с шагом 1 -> кадры 0..59
	require.NoError(t, err)
	require.Len(t, frames, 60)
	assert.Equal(t, 0, frames[0].Time)
	assert.Equal(t, 59, frames[59].Time)
}
