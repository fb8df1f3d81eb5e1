package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitsync/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "fitsync",
	Short: "FitSync CLI - administrative console for the gym-management backend",
	Long: `FitSync CLI is the administrative console for a gym-management business.

It lets staff register gyms, enroll members, assign trainers, record
attendance and manage billing and invoicing, all against the FitSync
REST backend.

Required environment variables:
  FITSYNC_API_URL - Backend API base URL (default: http://localhost:5000/api)
  FITSYNC_TOKEN   - Session token obtained via 'fitsync login' (optional)`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("FitSync CLI executed")

		fmt.Println("Welcome to FitSync CLI!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
