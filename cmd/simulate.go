package main

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/roster"
	"github.com/shenikar/mineguard/internal/simulation"
	"github.com/shenikar/mineguard/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simulateOpts struct {
	hazardType  string
	lat         float64
	lng         float64
	sector      string
	duration    int
	fps         int
	workersFile string
	logLevel    string
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print spread simulation frames for a hypothetical hazard as JSON lines",
	Long: `Моделирует распространение опасности без базы данных.
Каждый кадр выводится отдельной строкой JSON.`,
	Example: `  mineguard simulate --type "Gas Leak" --lat 23.045 --lng 81.325 --sector A --duration 10`,
	Args:    cobra.NoArgs,
	RunE:    runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVar(&simulateOpts.hazardType, "type", string(models.HazardGasLeak), "hazard type")
	f.Float64Var(&simulateOpts.lat, "lat", 23.045, "hazard latitude")
	f.Float64Var(&simulateOpts.lng, "lng", 81.325, "hazard longitude")
	f.StringVar(&simulateOpts.sector, "sector", "A", "hazard sector")
	f.IntVar(&simulateOpts.duration, "duration", 30, "total simulated seconds")
	f.IntVar(&simulateOpts.fps, "fps", 2, "frames per second")
	f.StringVar(&simulateOpts.workersFile, "workers", "", "YAML roster (built-in roster when empty)")
	f.StringVar(&simulateOpts.logLevel, "log-level", "warn", "log level, logs go to stderr")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	// stdout занят кадрами
	log := logger.NewStderr(simulateOpts.logLevel)

	if simulateOpts.duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	directory, err := roster.Load(simulateOpts.workersFile)
	if err != nil {
		return err
	}
	workers, err := directory.ListWorkers(cmd.Context())
	if err != nil {
		return err
	}

	origin := models.Location{Lat: simulateOpts.lat, Lng: simulateOpts.lng, Sector: simulateOpts.sector}
	hazardType := models.HazardType(simulateOpts.hazardType)

	enc := json.NewEncoder(cmd.OutOrStdout())
	count := 0
	for frame := range simulation.Frames(origin, hazardType, workers, simulateOpts.duration, simulateOpts.fps) {
		if err := enc.Encode(frame); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
		count++
	}

	log.WithFields(logrus.Fields{
		"type":    hazardType,
		"workers": len(workers),
		"frames":  count,
		"step":    simulation.FrameStep(simulateOpts.fps),
	}).Info("Simulation finished")
	return nil
}
