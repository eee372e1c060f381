package models

import (
	"time"

	"github.com/google/uuid"
)

// HazardType тип опасности. Набор расширяемый: неизвестные типы допускаются
type HazardType string

const (
	HazardGasLeak          HazardType = "Gas Leak"
	HazardFire             HazardType = "Fire"
	HazardRockFall         HazardType = "Rock Fall"
	HazardPoorVentilation  HazardType = "Poor Ventilation"
	HazardEquipmentFailure HazardType = "Equipment Failure"
	HazardSOSEmergency     HazardType = "SOS - EMERGENCY"
	HazardHighCO2          HazardType = "High CO2 Levels"
)

// Severity уровень опасности
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid проверяет, что уровень входит в допустимый набор
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// HazardStatus статус обработки опасности
type HazardStatus string

const (
	StatusPending      HazardStatus = "pending"
	StatusAcknowledged HazardStatus = "acknowledged"
	StatusEscalated    HazardStatus = "escalated"
	StatusResolved     HazardStatus = "resolved"
)

// ActiveStatuses статусы, при которых опасность считается активной
var ActiveStatuses = []HazardStatus{StatusPending, StatusAcknowledged, StatusEscalated}

// IsValid проверяет, что статус является одним из четырех допустимых литералов
func (s HazardStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAcknowledged, StatusEscalated, StatusResolved:
		return true
	}
	return false
}

// HazardSource источник сообщения об опасности
type HazardSource string

const (
	SourceWorker    HazardSource = "WORKER"
	SourceIoTSensor HazardSource = "IoT_SENSOR"
)

// Location точка в шахте. Sector - непрозрачный идентификатор участка
type Location struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Sector string  `json:"sector"`
}

// SensorSnapshot показания датчика на момент обнаружения
type SensorSnapshot struct {
	CO2         float64 `json:"co2"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// Hazard событие опасности. CreatedAt задается один раз и служит началом отсчета симуляции
type Hazard struct {
	ID          uuid.UUID       `json:"id"`
	Type        HazardType      `json:"type"`
	Severity    Severity        `json:"severity"`
	Location    Location        `json:"location"`
	ReportedBy  string          `json:"reported_by"`
	Source      HazardSource    `json:"source"`
	Status      HazardStatus    `json:"status"`
	Description string          `json:"description"`
	SensorData  *SensorSnapshot `json:"sensor_data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
