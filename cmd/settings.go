package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitsync/internal/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and update business settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update business settings",
	Long: `Update business-wide settings. Only the flags you pass change; every
other field keeps its current value.`,
	Example: `  fitsync settings update --gym-name "FitSync Gym Center" --contact-email admin@fitsync.com`,
	RunE:    runSettingsUpdate,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsUpdateCmd)

	settingsShowCmd.Flags().StringP("output", "o", "", "Write JSON to a file")

	settingsUpdateCmd.Flags().String("gym-name", "", "Business name")
	settingsUpdateCmd.Flags().String("contact-email", "", "Contact email")
	settingsUpdateCmd.Flags().String("phone", "", "Contact phone")
	settingsUpdateCmd.Flags().String("address", "", "Business address")
	settingsUpdateCmd.Flags().Bool("email-notifications", true, "Enable email notifications")
	settingsUpdateCmd.Flags().Bool("sms-notifications", false, "Enable SMS notifications")
	settingsUpdateCmd.Flags().Bool("payment-reminders", true, "Enable payment reminder notifications")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("settings")
	outputPath, _ := cmd.Flags().GetString("output")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	settings, err := gw.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	return writeJSON(settings, outputPath, log)
}

func runSettingsUpdate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("settings")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	// Read-modify-write so unspecified fields keep their stored values.
	settings, err := gw.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("gym-name") {
		settings.GymName, _ = cmd.Flags().GetString("gym-name")
	}
	if cmd.Flags().Changed("contact-email") {
		settings.ContactEmail, _ = cmd.Flags().GetString("contact-email")
	}
	if cmd.Flags().Changed("phone") {
		settings.PhoneNumber, _ = cmd.Flags().GetString("phone")
	}
	if cmd.Flags().Changed("address") {
		settings.Address, _ = cmd.Flags().GetString("address")
	}
	if cmd.Flags().Changed("email-notifications") {
		settings.Notifications.Email, _ = cmd.Flags().GetBool("email-notifications")
	}
	if cmd.Flags().Changed("sms-notifications") {
		settings.Notifications.SMS, _ = cmd.Flags().GetBool("sms-notifications")
	}
	if cmd.Flags().Changed("payment-reminders") {
		settings.Notifications.PaymentReminders, _ = cmd.Flags().GetBool("payment-reminders")
	}

	updated, err := gw.UpdateSettings(cmd.Context(), settings)
	if err != nil {
		return err
	}

	log.Info().Str("gym_name", updated.GymName).Msg("Settings updated")
	fmt.Println("Settings saved")
	return nil
}
