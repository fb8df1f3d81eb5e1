package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fitsync/internal/gateway"
	"fitsync/internal/logger"
	"fitsync/pkg/models"
)

var trainersCmd = &cobra.Command{
	Use:   "trainers",
	Short: "Manage trainers",
}

var trainersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trainers",
	Example: `  fitsync trainers list
  fitsync trainers list --specialization "Weight Training"
  fitsync trainers list --search asha`,
	RunE: runTrainersList,
}

var trainersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a trainer",
	RunE:  runTrainersAdd,
}

var trainersUpdateCmd = &cobra.Command{
	Use:   "update [trainer-id]",
	Short: "Update a trainer",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrainersUpdate,
}

var trainersDeleteCmd = &cobra.Command{
	Use:   "delete [trainer-id]",
	Short: "Delete a trainer",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrainersDelete,
}

func init() {
	rootCmd.AddCommand(trainersCmd)
	trainersCmd.AddCommand(trainersListCmd, trainersAddCmd, trainersUpdateCmd, trainersDeleteCmd)

	trainersListCmd.Flags().String("specialization", "", "Filter by specialization ("+strings.Join(models.TrainerSpecializations, ", ")+")")
	trainersListCmd.Flags().String("search", "", "Free-text search over name and contact details")
	trainersListCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	trainersListCmd.Flags().StringP("output", "o", "", "Write JSON to a file")

	for _, c := range []*cobra.Command{trainersAddCmd, trainersUpdateCmd} {
		c.Flags().String("name", "", "Trainer name")
		c.Flags().String("email", "", "Trainer email")
		c.Flags().String("phone", "", "Trainer phone")
		c.Flags().String("specialization", "Weight Training", "Specialization")
		c.Flags().String("experience", "", "Years of experience")
		c.Flags().String("bio", "", "Short bio")
		c.Flags().String("status", "Active", "Status (Active, Inactive)")
	}

	trainersDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func trainerInputFromFlags(cmd *cobra.Command) models.TrainerInput {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	specialization, _ := cmd.Flags().GetString("specialization")
	experience, _ := cmd.Flags().GetString("experience")
	bio, _ := cmd.Flags().GetString("bio")
	status, _ := cmd.Flags().GetString("status")

	return models.TrainerInput{
		Name:           name,
		Email:          email,
		Phone:          phone,
		Specialization: specialization,
		Experience:     experience,
		Bio:            bio,
		Status:         status,
	}
}

func runTrainersList(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("trainers")

	specialization, _ := cmd.Flags().GetString("specialization")
	search, _ := cmd.Flags().GetString("search")
	asJSON, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	trainers, err := gw.ListTrainers(cmd.Context(), gateway.TrainerFilter{
		Specialization: specialization,
		Search:         search,
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("trainers", len(trainers)).
		Str("specialization", specialization).
		Str("search", search).
		Msg("Trainers listed")

	if asJSON || outputPath != "" {
		return writeJSON(trainers, outputPath, log)
	}

	if len(trainers) == 0 {
		fmt.Println("No trainers found")
		return nil
	}

	table := newTable()
	fmt.Fprintln(table, "ID\tNAME\tEMAIL\tPHONE\tSPECIALIZATION\tSTATUS")
	for _, t := range trainers {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Email, t.Phone, t.Specialization, t.Status)
	}
	return table.Flush()
}

func runTrainersAdd(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}

	trainer, err := gw.CreateTrainer(cmd.Context(), trainerInputFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("Trainer %s added (%s)\n", trainer.Name, trainer.ID)
	return nil
}

func runTrainersUpdate(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}

	trainer, err := gw.UpdateTrainer(cmd.Context(), args[0], trainerInputFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("Trainer %s updated\n", trainer.Name)
	return nil
}

func runTrainersDelete(cmd *cobra.Command, args []string) error {
	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm && !confirmPrompt("Are you sure you want to delete this trainer?") {
		fmt.Println("Deletion cancelled")
		return nil
	}

	gw, err := newGateway()
	if err != nil {
		return err
	}

	if err := gw.DeleteTrainer(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Trainer %s deleted\n", args[0])
	return nil
}
