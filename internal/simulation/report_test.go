package simulation

import (
	"testing"

	"github.com/shenikar/mineguard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	hazard := &models.Hazard{Type: models.HazardGasLeak, Location: testOrigin}

	report := NewReport(hazard, testWorkers(), 1)

	assert.Same(t, hazard, report.Hazard)
	assert.Equal(t, 1.0, report.SimulationTime)
	assert.Equal(t, 4, report.TotalWorkers)
	// W001 на расстоянии ~0.0011 (high), W004 на 0.0015 (medium)
	assert.Equal(t, 2, report.TotalAffectedWorkers)
	assert.Len(t, report.AffectedWorkers.High, 1)
	assert.Len(t, report.AffectedWorkers.Medium, 1)
	assert.Equal(t, "Move to Sector C via Tunnel 2", report.EvacuationRoute.Direction)
}

func TestNewReport_NegativeTime(t *testing.T) {
	hazard := &models.Hazard{Type: models.HazardFire, Location: testOrigin}

	report := NewReport(hazard, testWorkers(), -30)

	assert.Zero(t, report.SimulationTime)
	assert.Zero(t, report.TotalAffectedWorkers)
}
