package models

import (
	"time"
)

// SensorReading запись журнала показаний датчика
type SensorReading struct {
	ID          int64     `json:"id"`
	SourceID    string    `json:"source_id"`
	CO2         float64   `json:"co2"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Location    Location  `json:"location"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// IngestResult результат обработки показаний датчика
type IngestResult struct {
	Reading        *SensorReading
	HazardDetected bool
	Hazard         *Hazard
}
