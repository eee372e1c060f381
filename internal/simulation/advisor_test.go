package simulation

import (
	"testing"

	"github.com/shenikar/mineguard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecommendedAction(t *testing.T) {
	assert.Equal(t, "IMMEDIATE EVACUATION - Fire detected in critical zone. Leave now!", RecommendedAction(models.SeverityCritical, models.HazardFire))
	assert.Equal(t, "EVACUATE AREA - Rock Fall spreading. Move to safe zone.", RecommendedAction(models.SeverityHigh, models.HazardRockFall))
	assert.Equal(t, "ALERT - SOS - EMERGENCY detected nearby. Prepare for evacuation.", RecommendedAction(models.SeverityMedium, models.HazardSOSEmergency))
	assert.Equal(t, "Monitor situation", RecommendedAction("low", models.HazardFire))
}

func TestEvacuationRouteFor(t *testing.T) {
	tests := []struct {
		sector    string
		direction string
	}{
		{sector: "A", direction: "Move to Sector C via Tunnel 2"},
		{sector: "B", direction: "Move to Sector A via Tunnel 1"},
		{sector: "C", direction: "Exit mine immediately via Main Entrance"},
		{sector: "D", direction: "Exit to safe zone away from hazard"},
		{sector: "", direction: "Exit to safe zone away from hazard"},
	}

	for _, tt := range tests {
		t.Run(tt.sector, func(t *testing.T) {
			route := EvacuationRouteFor(models.Location{Lat: 1, Lng: 2, Sector: tt.sector})

			assert.Equal(t, tt.direction, route.Direction)
			assert.Equal(t, "CRITICAL", route.Priority)
			assert.Equal(t, 2, route.EstimatedTimeMinutes)
		})
	}
}
