package simulation

import (
	"testing"
	"time"

	"github.com/shenikar/mineguard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allHazardTypes = []models.HazardType{
	models.HazardGasLeak,
	models.HazardFire,
	models.HazardRockFall,
	models.HazardPoorVentilation,
	models.HazardEquipmentFailure,
	models.HazardSOSEmergency,
	models.HazardHighCO2,
	"Flooding",
}

func TestSpreadRate_UnknownTypeFallsBackToGasLeak(t *testing.T) {
	assert.Equal(t, SpreadRate(models.HazardGasLeak), SpreadRate("Flooding"))
	assert.Equal(t, SpreadRate(models.HazardGasLeak), SpreadRate(models.HazardHighCO2))
	assert.Equal(t, 0.003, SpreadRate(models.HazardFire))
	assert.Equal(t, 0.004, SpreadRate(models.HazardSOSEmergency))
}

func TestDangerZones_Shape(t *testing.T) {
	zones := DangerZones(models.HazardFire, 100)

	// 100 секунд * 0.003 = 0.3
	require.Len(t, zones, 3)
	assert.Equal(t, models.SeverityCritical, zones[0].Level)
	assert.Equal(t, models.SeverityHigh, zones[1].Level)
	assert.Equal(t, models.SeverityMedium, zones[2].Level)

	assert.InDelta(t, 0.099, zones[0].Radius, 1e-9)
	assert.InDelta(t, 0.201, zones[1].Radius, 1e-9)
	assert.InDelta(t, 0.3, zones[2].Radius, 1e-9)

	assert.Equal(t, []string{"#ef4444", "#f97316", "#eab308"}, []string{zones[0].Color, zones[1].Color, zones[2].Color})
	assert.Equal(t, []int{1, 3, 5}, []int{zones[0].EvacuationTimeMinutes, zones[1].EvacuationTimeMinutes, zones[2].EvacuationTimeMinutes})
	for _, zone := range zones {
		assert.Equal(t, zone.Level, zone.Severity)
	}
}

func TestDangerZones_StrictlyNested(t *testing.T) {
	for _, hazardType := range allHazardTypes {
		for _, elapsed := range []float64{0.5, 1, 7, 30, 600, 86400} {
			zones := DangerZones(hazardType, elapsed)
			assert.Less(t, zones[0].Radius, zones[1].Radius, "%s at %v", hazardType, elapsed)
			assert.Less(t, zones[1].Radius, zones[2].Radius, "%s at %v", hazardType, elapsed)
		}
	}
}

func TestDangerZones_ZeroAndNegativeElapsed(t *testing.T) {
	for _, elapsed := range []float64{0, -1, -3600} {
		for _, zone := range DangerZones(models.HazardGasLeak, elapsed) {
			assert.Zero(t, zone.Radius)
		}
	}
}

func TestDangerZones_Monotonic(t *testing.T) {
	for _, hazardType := range allHazardTypes {
		previous := DangerZones(hazardType, 0)
		for elapsed := 1.0; elapsed <= 300; elapsed += 7 {
			current := DangerZones(hazardType, elapsed)
			for i := range current {
				assert.GreaterOrEqual(t, current[i].Radius, previous[i].Radius)
			}
			previous = current
		}
	}
}

func TestElapsedSeconds(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 90.0, ElapsedSeconds(createdAt, createdAt.Add(90*time.Second)))
	assert.Zero(t, ElapsedSeconds(createdAt, createdAt.Add(-time.Minute)))
}
