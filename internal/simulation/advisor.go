package simulation

import (
	"fmt"

	"github.com/shenikar/mineguard/internal/models"
)

// Маршруты эвакуации пока задаются статически по участку.
// Приоритет и время не зависят ни от расстояния, ни от уровня опасности.
const (
	evacuationPriority = "CRITICAL"
	evacuationETA      = 2
	defaultDirection   = "Exit to safe zone away from hazard"
)

var sectorDirections = map[string]string{
	"A": "Move to Sector C via Tunnel 2",
	"B": "Move to Sector A via Tunnel 1",
	"C": "Exit mine immediately via Main Entrance",
}

// EvacuationRoute рекомендация по эвакуации
type EvacuationRoute struct {
	Direction            string `json:"direction"`
	Priority             string `json:"priority"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
}

// RecommendedAction текст рекомендации для сотрудника в зоне заданного уровня
func RecommendedAction(level models.Severity, hazardType models.HazardType) string {
	switch level {
	case models.SeverityCritical:
		return fmt.Sprintf("IMMEDIATE EVACUATION - %s detected in critical zone. Leave now!", hazardType)
	case models.SeverityHigh:
		return fmt.Sprintf("EVACUATE AREA - %s spreading. Move to safe zone.", hazardType)
	case models.SeverityMedium:
		return fmt.Sprintf("ALERT - %s detected nearby. Prepare for evacuation.", hazardType)
	}
	return "Monitor situation"
}

// EvacuationRouteFor возвращает маршрут эвакуации для участка, где возникла опасность
func EvacuationRouteFor(origin models.Location) EvacuationRoute {
	direction, ok := sectorDirections[origin.Sector]
	if !ok {
		direction = defaultDirection
	}
	return EvacuationRoute{
		Direction:            direction,
		Priority:             evacuationPriority,
		EstimatedTimeMinutes: evacuationETA,
	}
}
