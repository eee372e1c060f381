package simulation

import "github.com/shenikar/mineguard/internal/models"

// Report состояние распространения опасности на заданный момент
type Report struct {
	Hazard               *models.Hazard
	SimulationTime       float64
	DangerZones          [3]DangerZone
	AffectedWorkers      Exposure
	TotalWorkers         int
	TotalAffectedWorkers int
	EvacuationRoute      EvacuationRoute
}

// NewReport собирает отчет для опасности, списка сотрудников и прошедшего времени
func NewReport(hazard *models.Hazard, workers []models.Worker, elapsedSeconds float64) *Report {
	exposure := AffectedWorkers(hazard.Location, hazard.Type, workers, elapsedSeconds)
	return &Report{
		Hazard:               hazard,
		SimulationTime:       max(elapsedSeconds, 0),
		DangerZones:          DangerZones(hazard.Type, elapsedSeconds),
		AffectedWorkers:      exposure,
		TotalWorkers:         len(workers),
		TotalAffectedWorkers: exposure.Total(),
		EvacuationRoute:      EvacuationRouteFor(hazard.Location),
	}
}
