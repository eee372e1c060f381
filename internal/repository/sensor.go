package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/service"
)

type SensorRepository struct {
	db *pgxpool.Pool
}

func NewSensorRepository(db *pgxpool.Pool) service.SensorRepository {
	return &SensorRepository{db: db}
}

// SaveReading сохраняет показания датчика в журнал
func (r *SensorRepository) SaveReading(ctx context.Context, reading *models.SensorReading) error {
	query := `
		INSERT INTO sensor_readings (source_id, co2, temperature, humidity, lat, lng, sector)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		reading.SourceID,
		reading.CO2,
		reading.Temperature,
		reading.Humidity,
		reading.Location.Lat,
		reading.Location.Lng,
		reading.Location.Sector,
	).Scan(&reading.ID, &reading.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save sensor reading: %w", err)
	}
	return nil
}

// RecentReadings возвращает последние показания, новые первыми
func (r *SensorRepository) RecentReadings(ctx context.Context, limit int) ([]*models.SensorReading, error) {
	query := `
		SELECT id, source_id, co2, temperature, humidity, lat, lng, sector, recorded_at
		FROM sensor_readings
		ORDER BY recorded_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensor readings: %w", err)
	}
	defer rows.Close()

	readings := make([]*models.SensorReading, 0)
	for rows.Next() {
		reading := &models.SensorReading{}
		err := rows.Scan(
			&reading.ID,
			&reading.SourceID,
			&reading.CO2,
			&reading.Temperature,
			&reading.Humidity,
			&reading.Location.Lat,
			&reading.Location.Lng,
			&reading.Location.Sector,
			&reading.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor reading row: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return readings, nil
}
