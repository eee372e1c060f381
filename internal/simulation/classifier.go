package simulation

import "github.com/shenikar/mineguard/internal/models"

// Пороговые значения классификатора
const (
	gasLeakCO2PPM      = 1000
	gasLeakCriticalPPM = 2000
	fireTemperatureC   = 40
	fireCriticalC      = 55
	dryAirHumidityPct  = 20
	elevatedCO2PPM     = 800
)

// Classification результат классификации показаний датчика
type Classification struct {
	Type     models.HazardType `json:"type"`
	Severity models.Severity   `json:"severity"`
}

// Classify сопоставляет показания датчика с типом и уровнем опасности.
// Проверки идут строго по приоритету, срабатывает первая: газ, нагрев, сухой воздух, повышенный CO2.
// Второе значение false означает нормальные показания.
func Classify(co2, temperature, humidity float64) (Classification, bool) {
	switch {
	case co2 > gasLeakCO2PPM:
		severity := models.SeverityHigh
		if co2 > gasLeakCriticalPPM {
			severity = models.SeverityCritical
		}
		return Classification{Type: models.HazardGasLeak, Severity: severity}, true
	case temperature > fireTemperatureC:
		severity := models.SeverityHigh
		if temperature > fireCriticalC {
			severity = models.SeverityCritical
		}
		return Classification{Type: models.HazardFire, Severity: severity}, true
	case humidity < dryAirHumidityPct:
		return Classification{Type: models.HazardPoorVentilation, Severity: models.SeverityMedium}, true
	case co2 > elevatedCO2PPM && co2 <= gasLeakCO2PPM:
		return Classification{Type: models.HazardHighCO2, Severity: models.SeverityMedium}, true
	}
	return Classification{}, false
}
