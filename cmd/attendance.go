package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitsync/internal/logger"
	"fitsync/pkg/models"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Record and review member attendance",
}

var attendanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendance records",
	Example: `  # Today's records with the summary
  fitsync attendance list

  # A specific day
  fitsync attendance list --date 2026-08-30`,
	RunE: runAttendanceList,
}

var attendanceCheckInCmd = &cobra.Command{
	Use:   "check-in [member-id]",
	Short: "Record a member check-in",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttendanceCheckIn,
}

var attendanceUpdateCmd = &cobra.Command{
	Use:   "update [record-id]",
	Short: "Correct an attendance record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttendanceUpdate,
}

func init() {
	rootCmd.AddCommand(attendanceCmd)
	attendanceCmd.AddCommand(attendanceListCmd, attendanceCheckInCmd, attendanceUpdateCmd)

	attendanceListCmd.Flags().String("date", "", "Limit to one calendar date (YYYY-MM-DD)")
	attendanceListCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	attendanceListCmd.Flags().StringP("output", "o", "", "Write JSON to a file")

	for _, c := range []*cobra.Command{attendanceCheckInCmd, attendanceUpdateCmd} {
		c.Flags().String("status", string(models.AttendancePresent), "Status (Present, Late, Absent)")
		c.Flags().String("session", "Manual", "Session type")
		c.Flags().String("member-name", "", "Member display name")
	}
	attendanceUpdateCmd.Flags().String("member", "", "Member id")
}

func attendanceInputFromFlags(cmd *cobra.Command, memberID string) models.AttendanceInput {
	status, _ := cmd.Flags().GetString("status")
	session, _ := cmd.Flags().GetString("session")
	memberName, _ := cmd.Flags().GetString("member-name")

	return models.AttendanceInput{
		MemberID:    memberID,
		MemberName:  memberName,
		Status:      models.AttendanceStatus(status),
		SessionType: session,
	}
}

func runAttendanceList(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("attendance")

	date, _ := cmd.Flags().GetString("date")
	asJSON, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")

	if date != "" {
		if _, err := models.ParseDate(date); err != nil {
			return err
		}
	}

	gw, err := newGateway()
	if err != nil {
		return err
	}

	records, err := gw.ListAttendance(cmd.Context(), date)
	if err != nil {
		return err
	}

	summary := models.SummarizeAttendance(records)
	log.Info().
		Int("records", summary.Total).
		Str("date", date).
		Msg("Attendance listed")

	if asJSON || outputPath != "" {
		return writeJSON(struct {
			Summary models.AttendanceSummary  `json:"summary"`
			Records []models.AttendanceRecord `json:"records"`
		}{summary, records}, outputPath, log)
	}

	fmt.Printf("Present: %d   Late: %d   Absent: %d   Rate: %.1f%%\n\n",
		summary.Present, summary.Late, summary.Absent, summary.Rate)

	if len(records) == 0 {
		fmt.Println("No attendance records found")
		return nil
	}

	table := newTable()
	fmt.Fprintln(table, "ID\tMEMBER\tCHECK-IN\tSTATUS\tSESSION")
	for _, r := range records {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.MemberName, r.CheckInTime.Format("15:04"), r.Status, r.SessionType)
	}
	return table.Flush()
}

func runAttendanceCheckIn(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}

	record, err := gw.CreateAttendance(cmd.Context(), attendanceInputFromFlags(cmd, args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("Check-in recorded for %s (%s)\n", record.MemberName, record.Status)
	return nil
}

func runAttendanceUpdate(cmd *cobra.Command, args []string) error {
	memberID, _ := cmd.Flags().GetString("member")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	record, err := gw.UpdateAttendance(cmd.Context(), args[0], attendanceInputFromFlags(cmd, memberID))
	if err != nil {
		return err
	}

	fmt.Printf("Attendance record %s updated (%s)\n", record.ID, record.Status)
	return nil
}
