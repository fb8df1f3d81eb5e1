package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitsync/internal/logger"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the backend is reachable",
	Long: `Probe the backend's health endpoint with a short timeout and report
whether the server and its datastore are up. Useful before a working session
or when another command reports connection errors.`,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("health")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	status := gw.Health(cmd.Context())
	log.Info().
		Bool("connected", status.Connected).
		Bool("database_ready", status.DatabaseReady).
		Msg("Health probe completed")

	if !status.Connected {
		return fmt.Errorf("%s (API: %s)", status.Message, gw.BaseURL())
	}

	fmt.Printf("%s (API: %s)\n", status.Message, gw.BaseURL())
	if status.DatabaseReady {
		fmt.Println("Database: ready")
	} else {
		fmt.Println("Database: not ready")
	}
	return nil
}
