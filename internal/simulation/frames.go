package simulation

import (
	"iter"

	"github.com/shenikar/mineguard/internal/models"
)

// Frame кадр анимации распространения опасности
type Frame struct {
	Time            int             `json:"time"`
	DangerZones     [3]DangerZone   `json:"danger_zones"`
	AffectedWorkers Exposure        `json:"affected_workers"`
	HazardCenter    models.Location `json:"hazard_center"`
}

// FrameStep шаг между кадрами в целых секундах: кадр каждые fps секунд, не меньше одной
func FrameStep(fps int) int {
	return max(fps, 1)
}

// Frames лениво генерирует кадры от 0 до totalSeconds (не включительно).
// Последовательность конечна и может обходиться повторно.
func Frames(origin models.Location, hazardType models.HazardType, workers []models.Worker, totalSeconds, fps int) iter.Seq[Frame] {
	step := FrameStep(fps)
	return func(yield func(Frame) bool) {
		for t := 0; t < totalSeconds; t += step {
			frame := Frame{
				Time:            t,
				DangerZones:     DangerZones(hazardType, float64(t)),
				AffectedWorkers: AffectedWorkers(origin, hazardType, workers, float64(t)),
				HazardCenter:    origin,
			}
			if !yield(frame) {
				return
			}
		}
	}
}
