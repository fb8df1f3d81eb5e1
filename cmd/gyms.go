package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitsync/internal/logger"
	"fitsync/pkg/models"
)

var gymsCmd = &cobra.Command{
	Use:   "gyms",
	Short: "Manage gym locations",
}

var gymsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered gyms",
	RunE:  runGymsList,
}

var gymsAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Register a new gym location",
	Example: `  fitsync gyms add --name "FitSync Indiranagar" --phone 9876543210 --address "100 Feet Road, Bengaluru"`,
	RunE:    runGymsAdd,
}

var gymsUpdateCmd = &cobra.Command{
	Use:   "update [gym-id]",
	Short: "Update a gym location",
	Args:  cobra.ExactArgs(1),
	RunE:  runGymsUpdate,
}

var gymsDeleteCmd = &cobra.Command{
	Use:   "delete [gym-id]",
	Short: "Delete a gym location",
	Args:  cobra.ExactArgs(1),
	RunE:  runGymsDelete,
}

func init() {
	rootCmd.AddCommand(gymsCmd)
	gymsCmd.AddCommand(gymsListCmd, gymsAddCmd, gymsUpdateCmd, gymsDeleteCmd)

	gymsListCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	gymsListCmd.Flags().StringP("output", "o", "", "Write JSON to a file")

	for _, c := range []*cobra.Command{gymsAddCmd, gymsUpdateCmd} {
		c.Flags().String("name", "", "Gym name")
		c.Flags().String("phone", "", "Contact phone (10 digits)")
		c.Flags().String("address", "", "Street address")
		c.Flags().String("year", "", "Year established")
		c.Flags().Int64("fee", 0, "Base membership fee")
	}

	gymsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func gymInputFromFlags(cmd *cobra.Command) models.GymInput {
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")
	address, _ := cmd.Flags().GetString("address")
	year, _ := cmd.Flags().GetString("year")
	fee, _ := cmd.Flags().GetInt64("fee")

	return models.GymInput{
		GymName: name,
		Phone:   phone,
		Address: address,
		Year:    year,
		Fee:     fee,
	}
}

func runGymsList(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("gyms")
	asJSON, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	gyms, err := gw.ListGyms(cmd.Context())
	if err != nil {
		return err
	}

	log.Info().Int("gyms", len(gyms)).Msg("Gyms listed")

	if asJSON || outputPath != "" {
		return writeJSON(gyms, outputPath, log)
	}

	if len(gyms) == 0 {
		fmt.Println("No gyms found")
		return nil
	}

	table := newTable()
	fmt.Fprintln(table, "ID\tNAME\tPHONE\tADDRESS")
	for _, g := range gyms {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", g.ID, g.GymName, g.Phone, g.Address)
	}
	return table.Flush()
}

func runGymsAdd(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}

	gym, err := gw.CreateGym(cmd.Context(), gymInputFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("Gym %s registered (%s)\n", gym.GymName, gym.ID)
	return nil
}

func runGymsUpdate(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}

	gym, err := gw.UpdateGym(cmd.Context(), args[0], gymInputFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("Gym %s updated\n", gym.GymName)
	return nil
}

func runGymsDelete(cmd *cobra.Command, args []string) error {
	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm && !confirmPrompt("Are you sure you want to delete this gym?") {
		fmt.Println("Deletion cancelled")
		return nil
	}

	gw, err := newGateway()
	if err != nil {
		return err
	}

	if err := gw.DeleteGym(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Gym %s deleted\n", args[0])
	return nil
}
