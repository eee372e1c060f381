package simulation

import (
	"testing"

	"github.com/shenikar/mineguard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigin = models.Location{Lat: 23.045, Lng: 81.325, Sector: "A"}

func testWorkers() []models.Worker {
	return []models.Worker{
		{ID: "W001", Name: "John Smith", Role: "Miner", Sector: "A", Lat: 23.0455, Lng: 81.3240},
		{ID: "W002", Name: "Mike Johnson", Role: "Driller", Sector: "B", Lat: 23.0480, Lng: 81.3275},
		{ID: "W003", Name: "Sarah Williams", Role: "Engineer", Sector: "A", Lat: 23.0425, Lng: 81.3260},
		{ID: "W004", Name: "Tom Brown", Role: "Supervisor", Sector: "C", Lat: 23.0465, Lng: 81.3250},
	}
}

func TestAffectedWorkers_Partition(t *testing.T) {
	// Подготовка: утечка газа, 1 секунда -> радиусы 0.00066 / 0.00134 / 0.002
	workers := []models.Worker{
		{ID: "in-critical", Name: "A", Lat: testOrigin.Lat + 0.0005, Lng: testOrigin.Lng},
		{ID: "in-high", Name: "B", Lat: testOrigin.Lat, Lng: testOrigin.Lng + 0.001},
		{ID: "in-medium", Name: "C", Lat: testOrigin.Lat - 0.0012, Lng: testOrigin.Lng - 0.0012},
		{ID: "outside", Name: "D", Lat: testOrigin.Lat + 0.01, Lng: testOrigin.Lng},
		{ID: "in-critical-2", Name: "E", Lat: testOrigin.Lat, Lng: testOrigin.Lng - 0.0001},
	}

	// Действие
	exposure := AffectedWorkers(testOrigin, models.HazardGasLeak, workers, 1)

	// Проверки
	require.Len(t, exposure.Critical, 2)
	require.Len(t, exposure.High, 1)
	require.Len(t, exposure.Medium, 1)
	assert.Equal(t, 4, exposure.Total())

	assert.Equal(t, "in-critical", exposure.Critical[0].WorkerID)
	assert.Equal(t, "in-critical-2", exposure.Critical[1].WorkerID)
	assert.Equal(t, "in-high", exposure.High[0].WorkerID)
	assert.Equal(t, "in-medium", exposure.Medium[0].WorkerID)

	assert.Equal(t, 0.0005, exposure.Critical[0].DistanceFromHazard)
	assert.Equal(t, 0.0017, exposure.Medium[0].DistanceFromHazard)
	assert.Equal(t, "IMMEDIATE EVACUATION - Gas Leak detected in critical zone. Leave now!", exposure.Critical[0].RecommendedAction)
	assert.Equal(t, "EVACUATE AREA - Gas Leak spreading. Move to safe zone.", exposure.High[0].RecommendedAction)
	assert.Equal(t, "ALERT - Gas Leak detected nearby. Prepare for evacuation.", exposure.Medium[0].RecommendedAction)
}

func TestAffectedWorkers_WorkerAtOriginIsCritical(t *testing.T) {
	workers := []models.Worker{{ID: "W-origin", Lat: testOrigin.Lat, Lng: testOrigin.Lng}}

	for _, hazardType := range allHazardTypes {
		for _, elapsed := range []float64{0.1, 1, 60, 3600} {
			exposure := AffectedWorkers(testOrigin, hazardType, workers, elapsed)
			require.Len(t, exposure.Critical, 1)
			assert.Zero(t, exposure.Critical[0].DistanceFromHazard)
			assert.Empty(t, exposure.High)
			assert.Empty(t, exposure.Medium)
		}
	}
}

func TestAffectedWorkers_NoDoubleCounting(t *testing.T) {
	workers := testWorkers()

	for elapsed := 0.0; elapsed <= 5; elapsed += 0.25 {
		exposure := AffectedWorkers(testOrigin, models.HazardSOSEmergency, workers, elapsed)

		seen := make(map[string]int)
		for _, bucket := range [][]AffectedWorker{exposure.Critical, exposure.High, exposure.Medium} {
			for _, worker := range bucket {
				seen[worker.WorkerID]++
			}
		}
		for id, count := range seen {
			assert.Equal(t, 1, count, "worker %s at %v", id, elapsed)
		}
		assert.LessOrEqual(t, exposure.Total(), len(workers))
	}
}

func TestAffectedWorkers_EmptyBucketsAreNotNil(t *testing.T) {
	exposure := AffectedWorkers(testOrigin, models.HazardRockFall, testWorkers(), 0)

	assert.NotNil(t, exposure.Critical)
	assert.NotNil(t, exposure.High)
	assert.NotNil(t, exposure.Medium)
	assert.Zero(t, exposure.Total())
}

func TestAffectedWorkers_EveryoneCoveredEventually(t *testing.T) {
	// Через час радиус газа 7.2 - все сотрудники в критической зоне
	exposure := AffectedWorkers(testOrigin, models.HazardGasLeak, testWorkers(), 3600)

	require.Len(t, exposure.Critical, 4)
	assert.Equal(t, []string{"W001", "W002", "W003", "W004"}, []string{
		exposure.Critical[0].WorkerID,
		exposure.Critical[1].WorkerID,
		exposure.Critical[2].WorkerID,
		exposure.Critical[3].WorkerID,
	})
	assert.Equal(t, "Miner", exposure.Critical[0].Role)
	assert.Equal(t, "B", exposure.Critical[1].Sector)
}
