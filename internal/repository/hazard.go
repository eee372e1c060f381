package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/service"
)

const hazardColumns = `
	id,
	type,
	severity,
	lat,
	lng,
	sector,
	reported_by,
	source,
	status,
	description,
	sensor_data,
	created_at,
	updated_at`

type HazardRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewHazardRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.HazardRepository {
	return &HazardRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об опасности в бд
func (r *HazardRepository) Create(ctx context.Context, hazard *models.Hazard) error {
	sensorData, err := marshalSensorData(hazard.SensorData)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO hazards (type, severity, lat, lng, sector, reported_by, source, status, description, sensor_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		hazard.Type,
		hazard.Severity,
		hazard.Location.Lat,
		hazard.Location.Lng,
		hazard.Location.Sector,
		hazard.ReportedBy,
		hazard.Source,
		hazard.Status,
		hazard.Description,
		sensorData,
	).Scan(&hazard.ID, &hazard.CreatedAt, &hazard.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hazard: %w", err)
	}
	return nil
}

// GetByID возвращает опасность по UUID
func (r *HazardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hazard, error) {
	query := `SELECT ` + hazardColumns + ` FROM hazards WHERE id = $1;`
	hazard, err := scanHazard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", models.ErrHazardNotFound, id)
		}
		return nil, fmt.Errorf("failed to get hazard by id: %w", err)
	}
	return hazard, nil
}

// UpdateStatus меняет статус и возвращает обновленную запись
func (r *HazardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.HazardStatus) (*models.Hazard, error) {
	query := `
		UPDATE hazards SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + hazardColumns + `;`
	hazard, err := scanHazard(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		// Если строка не вернулась, опасности с таким id не существует
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", models.ErrHazardNotFound, id)
		}
		return nil, fmt.Errorf("failed to update hazard status: %w", err)
	}
	return hazard, nil
}

// List возвращает последние опасности
func (r *HazardRepository) List(ctx context.Context, limit int) ([]*models.Hazard, error) {
	query := `SELECT ` + hazardColumns + ` FROM hazards ORDER BY created_at DESC LIMIT $1;`
	return r.queryHazards(ctx, "List", query, limit)
}

// ListByStatuses возвращает опасности с любым из статусов
func (r *HazardRepository) ListByStatuses(ctx context.Context, statuses []models.HazardStatus) ([]*models.Hazard, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	query := `SELECT ` + hazardColumns + ` FROM hazards WHERE status = ANY($1) ORDER BY created_at DESC;`
	return r.queryHazards(ctx, "ListByStatuses", query, values)
}

// ListByReporter возвращает опасности, о которых сообщил сотрудник или датчик
func (r *HazardRepository) ListByReporter(ctx context.Context, reporter string) ([]*models.Hazard, error) {
	query := `SELECT ` + hazardColumns + ` FROM hazards WHERE reported_by = $1 ORDER BY created_at DESC;`
	return r.queryHazards(ctx, "ListByReporter", query, reporter)
}

// ListBySector возвращает опасности участка
func (r *HazardRepository) ListBySector(ctx context.Context, sector string) ([]*models.Hazard, error) {
	query := `SELECT ` + hazardColumns + ` FROM hazards WHERE sector = $1 ORDER BY created_at DESC;`
	return r.queryHazards(ctx, "ListBySector", query, sector)
}

// ListNear находит опасности в квадрате вокруг точки
func (r *HazardRepository) ListNear(ctx context.Context, lat, lng, radius float64) ([]*models.Hazard, error) {
	query := `
		SELECT ` + hazardColumns + `
		FROM hazards
		WHERE
			lat BETWEEN $1 - $3 AND $1 + $3
			AND lng BETWEEN $2 - $3 AND $2 + $3
		ORDER BY created_at DESC;
	`
	return r.queryHazards(ctx, "ListNear", query, lat, lng, radius)
}

func (r *HazardRepository) queryHazards(ctx context.Context, op, query string, args ...any) ([]*models.Hazard, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hazards in %s: %w", op, err)
	}
	defer rows.Close()

	hazards := make([]*models.Hazard, 0)
	for rows.Next() {
		hazard, err := scanHazard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row in %s: %w", op, err)
		}
		hazards = append(hazards, hazard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, err)
	}
	return hazards, nil
}

func scanHazard(row pgx.Row) (*models.Hazard, error) {
	hazard := &models.Hazard{}
	var sensorData []byte
	err := row.Scan(
		&hazard.ID,
		&hazard.Type,
		&hazard.Severity,
		&hazard.Location.Lat,
		&hazard.Location.Lng,
		&hazard.Location.Sector,
		&hazard.ReportedBy,
		&hazard.Source,
		&hazard.Status,
		&hazard.Description,
		&sensorData,
		&hazard.CreatedAt,
		&hazard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(sensorData) > 0 {
		hazard.SensorData = &models.SensorSnapshot{}
		if err := json.Unmarshal(sensorData, hazard.SensorData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sensor data: %w", err)
		}
	}
	return hazard, nil
}

// marshalSensorData возвращает nil для NULL в колонке jsonb
func marshalSensorData(snapshot *models.SensorSnapshot) (any, error) {
	if snapshot == nil {
		return nil, nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sensor data: %w", err)
	}
	return string(data), nil
}

func hazardCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hazard:%s", id.String())
}

// GetHazardFromCache пытается получить опасность из Redis
func (r *HazardRepository) GetHazardFromCache(ctx context.Context, id uuid.UUID) (*models.Hazard, error) {
	val, err := r.redisClient.Get(ctx, hazardCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hazard from cache: %w", err)
	}

	hazard := &models.Hazard{}
	if err := json.Unmarshal(val, hazard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hazard from cache: %w", err)
	}
	return hazard, nil
}

// SetHazardCache сохраняет опасность в Redis
func (r *HazardRepository) SetHazardCache(ctx context.Context, hazard *models.Hazard) error {
	val, err := json.Marshal(hazard)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hazardCacheKey(hazard.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hazard in cache: %w", err)
	}
	return nil
}

// InvalidateHazardCache удаляет опасность из кэша
func (r *HazardRepository) InvalidateHazardCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, hazardCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hazard cache: %w", err)
	}
	return nil
}
