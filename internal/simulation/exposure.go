package simulation

import (
	"math"

	"github.com/shenikar/mineguard/internal/models"
)

// AffectedWorker сотрудник, попавший в зону опасности
type AffectedWorker struct {
	WorkerID           string  `json:"worker_id"`
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	Sector             string  `json:"sector"`
	DistanceFromHazard float64 `json:"distance_from_hazard"`
	RecommendedAction  string  `json:"recommended_action"`
}

// Exposure распределение сотрудников по уровням опасности
type Exposure struct {
	Critical []AffectedWorker `json:"critical"`
	High     []AffectedWorker `json:"high"`
	Medium   []AffectedWorker `json:"medium"`
}

// Total общее число затронутых сотрудников
func (e Exposure) Total() int {
	return len(e.Critical) + len(e.High) + len(e.Medium)
}

func (e *Exposure) add(level models.Severity, worker AffectedWorker) {
	switch level {
	case models.SeverityCritical:
		e.Critical = append(e.Critical, worker)
	case models.SeverityHigh:
		e.High = append(e.High, worker)
	case models.SeverityMedium:
		e.Medium = append(e.Medium, worker)
	}
}

// AffectedWorkers определяет, в какую зону попадает каждый сотрудник.
// Сотрудник относится к первой (самой опасной) зоне, радиус которой не меньше расстояния,
// и учитывается только один раз. Порядок сотрудников внутри уровня совпадает с входным.
func AffectedWorkers(origin models.Location, hazardType models.HazardType, workers []models.Worker, elapsedSeconds float64) Exposure {
	zones := DangerZones(hazardType, elapsedSeconds)
	exposure := Exposure{
		Critical: make([]AffectedWorker, 0),
		High:     make([]AffectedWorker, 0),
		Medium:   make([]AffectedWorker, 0),
	}

	for _, worker := range workers {
		distance := math.Hypot(worker.Lat-origin.Lat, worker.Lng-origin.Lng)
		for _, zone := range zones {
			if distance > zone.Radius {
				continue
			}
			exposure.add(zone.Level, AffectedWorker{
				WorkerID:           worker.ID,
				Name:               worker.Name,
				Role:               worker.Role,
				Sector:             worker.Sector,
				DistanceFromHazard: roundTo(distance, 4),
				RecommendedAction:  RecommendedAction(zone.Level, hazardType),
			})
			break
		}
	}
	return exposure
}

func roundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
