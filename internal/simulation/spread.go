package simulation

import (
	"time"

	"github.com/shenikar/mineguard/internal/models"
)

// defaultSpreadRate скорость для типов без собственного значения (как у утечки газа)
const defaultSpreadRate = 0.002

// spreadRates скорость распространения в единицах координат в секунду
var spreadRates = map[models.HazardType]float64{
	models.HazardGasLeak:          0.002,
	models.HazardFire:             0.003,
	models.HazardRockFall:         0.001,
	models.HazardPoorVentilation:  0.0015,
	models.HazardEquipmentFailure: 0.0008,
	models.HazardSOSEmergency:     0.004,
}

// DangerZone концентрическая зона опасности вокруг точки возникновения
type DangerZone struct {
	Level                 models.Severity `json:"level"`
	Radius                float64         `json:"radius"`
	Color                 string          `json:"color"`
	Severity              models.Severity `json:"severity"`
	EvacuationTimeMinutes int             `json:"evacuation_time_minutes"`
}

// zoneBand доля максимального радиуса и статические атрибуты зоны
type zoneBand struct {
	level      models.Severity
	fraction   float64
	color      string
	evacuation int
}

// zoneBands порядок важен: от самой опасной зоны к наименее опасной
var zoneBands = [3]zoneBand{
	{level: models.SeverityCritical, fraction: 0.33, color: "#ef4444", evacuation: 1},
	{level: models.SeverityHigh, fraction: 0.67, color: "#f97316", evacuation: 3},
	{level: models.SeverityMedium, fraction: 1.0, color: "#eab308", evacuation: 5},
}

// SpreadRate возвращает скорость распространения для типа опасности
func SpreadRate(hazardType models.HazardType) float64 {
	if rate, ok := spreadRates[hazardType]; ok {
		return rate
	}
	return defaultSpreadRate
}

// DangerZones рассчитывает три вложенные зоны опасности на момент elapsedSeconds.
// Отрицательное время трактуется как ноль.
func DangerZones(hazardType models.HazardType, elapsedSeconds float64) [3]DangerZone {
	maxRadius := max(elapsedSeconds, 0) * SpreadRate(hazardType)

	var zones [3]DangerZone
	for i, band := range zoneBands {
		zones[i] = DangerZone{
			Level:                 band.level,
			Radius:                maxRadius * band.fraction,
			Color:                 band.color,
			Severity:              band.level,
			EvacuationTimeMinutes: band.evacuation,
		}
	}
	return zones
}

// ElapsedSeconds время симуляции от момента создания опасности, не меньше нуля
func ElapsedSeconds(createdAt, now time.Time) float64 {
	return max(now.Sub(createdAt).Seconds(), 0)
}
