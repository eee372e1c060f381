package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/simulation"
)

// LocationDTO точка в шахте
// @Description Точка в шахте
type LocationDTO struct {
	Lat    float64 `json:"lat" validate:"latitude"`
	Lng    float64 `json:"lng" validate:"longitude"`
	Sector string  `json:"sector" validate:"max=32"`
}

// ReportHazardRequest DTO сообщения сотрудника об опасности
// @Description DTO сообщения сотрудника об опасности
type ReportHazardRequest struct {
	Type        string      `json:"type" validate:"required,max=64"`
	Severity    string      `json:"severity,omitempty" validate:"omitempty,oneof=medium high critical"`
	Location    LocationDTO `json:"location"`
	Worker      string      `json:"worker" validate:"required,max=64"`
	Description string      `json:"description,omitempty" validate:"max=2000"`
}

// UpdateStatusRequest DTO смены статуса
// @Description DTO смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SensorDataRequest DTO показаний датчика. Отсутствующие значения заменяются нормальными
// @Description DTO показаний датчика
type SensorDataRequest struct {
	CO2         *float64    `json:"co2,omitempty" validate:"omitempty,gte=0"`
	Temperature *float64    `json:"temperature,omitempty"`
	Humidity    *float64    `json:"humidity,omitempty" validate:"omitempty,gte=0,lte=100"`
	Location    LocationDTO `json:"location"`
	WorkerID    string      `json:"worker_id,omitempty" validate:"max=64"`
}

// HazardResponse DTO для ответа с информацией об опасности
// @Description DTO для ответа с информацией об опасности
type HazardResponse struct {
	ID          uuid.UUID              `json:"id"`
	Type        string                 `json:"type"`
	Severity    string                 `json:"severity"`
	Location    LocationDTO            `json:"location"`
	ReportedBy  string                 `json:"reported_by"`
	Source      string                 `json:"source"`
	Status      string                 `json:"status"`
	Description string                 `json:"description,omitempty"`
	SensorData  *models.SensorSnapshot `json:"sensor_data,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ReportHazardResponse ответ на создание опасности
type ReportHazardResponse struct {
	Success  bool            `json:"success"`
	HazardID uuid.UUID       `json:"hazard_id"`
	Message  string          `json:"message"`
	Hazard   *HazardResponse `json:"hazard"`
}

// UpdateStatusResponse ответ на смену статуса
type UpdateStatusResponse struct {
	Success bool            `json:"success"`
	Hazard  *HazardResponse `json:"hazard"`
	Message string          `json:"message"`
}

// SimulationResponse состояние распространения опасности
// @Description Зоны, затронутые сотрудники и маршрут эвакуации на момент времени
type SimulationResponse struct {
	HazardID             uuid.UUID                  `json:"hazard_id"`
	HazardType           string                     `json:"hazard_type"`
	Location             LocationDTO                `json:"location"`
	SimulationTime       float64                    `json:"simulation_time"`
	DangerZones          [3]simulation.DangerZone   `json:"danger_zones"`
	AffectedWorkers      simulation.Exposure        `json:"affected_workers"`
	TotalWorkers         int                        `json:"total_workers"`
	TotalAffectedWorkers int                        `json:"total_affected_workers"`
	EvacuationRoute      simulation.EvacuationRoute `json:"evacuation_route"`
}

// SimulationFramesResponse кадры анимации
type SimulationFramesResponse struct {
	HazardID uuid.UUID          `json:"hazard_id"`
	Duration int                `json:"duration"`
	FPS      int                `json:"fps"`
	Step     int                `json:"step"`
	Frames   []simulation.Frame `json:"frames"`
}

// SensorDataResponse ответ на прием показаний
type SensorDataResponse struct {
	Success        bool       `json:"success"`
	HazardDetected bool       `json:"hazard_detected"`
	HazardType     string     `json:"hazard_type,omitempty"`
	Severity       string     `json:"severity,omitempty"`
	HazardID       *uuid.UUID `json:"hazard_id,omitempty"`
	Message        string     `json:"message"`
}
