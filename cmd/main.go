package main

import (
	"os"

	"github.com/spf13/cobra"
)

//go:generate swag init --dir ..,../internal/handler/http/v1 --generalInfo cmd/main.go --output ../docs --parseInternal

// @title MineGuard API
// @version 1.0
// @description Mine hazard detection and spread simulation service.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var rootCmd = &cobra.Command{
	Use:   "mineguard",
	Short: "Mine hazard detection and spread simulation service",
	Long: `MineGuard принимает сообщения сотрудников и телеметрию датчиков,
создает опасности и моделирует их распространение по шахте.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
