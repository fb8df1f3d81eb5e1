package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fitsync/internal/billing"
	"fitsync/internal/gateway"
	"fitsync/internal/logger"
	"fitsync/pkg/models"
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Manage billing and payments",
	Long: `Manage the billing ledger: list bills with revenue statistics, create
bills, collect payments, generate invoices and send payment reminders.

All operations go through the FitSync backend; make sure it is running and
reachable (see 'fitsync health').`,
}

var billsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bills with aggregate statistics",
	Example: `  # All bills with the revenue summary
  fitsync bills list

  # Only overdue bills
  fitsync bills list --status Overdue

  # Machine-readable output
  fitsync bills list --json
  fitsync bills list -o bills.json`,
	RunE: runBillsList,
}

var billsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a bill for a member",
	Long: `Create a bill. The member and gym ids are resolved against the backend's
current records before submission; unknown ids are rejected locally.

Amount defaults to the plan's monthly price and the due date defaults to one
month from today. Each submission carries a client-generated idempotency key
so an accidental double-submit cannot create duplicate bills.`,
	Example: `  fitsync bills create --member 66a1f2… --gym 66a1e9… --plan Premium

  # Explicit amount and due date
  fitsync bills create --member 66a1f2… --gym 66a1e9… --plan Basic --amount 1500 --due 2026-10-01`,
	RunE: runBillsCreate,
}

var billsCollectCmd = &cobra.Command{
	Use:   "collect [bill-id]",
	Short: "Mark a bill as paid",
	Long: `Record a payment against a bill. Only Pending and Overdue bills can be
collected. The payment timestamp is set to now; the payment method defaults
to Cash when none is given.`,
	Example: `  fitsync bills collect 66a1f2… --method UPI
  fitsync bills collect 66a1f2…`,
	Args: cobra.ExactArgs(1),
	RunE: runBillsCollect,
}

var billsOverdueCmd = &cobra.Command{
	Use:   "mark-overdue [bill-id]",
	Short: "Mark a pending bill as overdue",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsOverdue,
}

var billsInvoiceCmd = &cobra.Command{
	Use:   "invoice [bill-id]",
	Short: "Generate the invoice for a bill",
	Long: `Generate the read-only invoice projection for a bill: the bill's figures
plus the member's contact details and an invoice number. Nothing is persisted
on the client; generating the same invoice twice yields the same document.`,
	Example: `  fitsync bills invoice 66a1f2…
  fitsync bills invoice 66a1f2… -o invoice.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBillsInvoice,
}

var billsRemindCmd = &cobra.Command{
	Use:   "remind [bill-id]",
	Short: "Send a payment reminder to the billed member",
	Long: `Send a payment reminder email for a bill. Because this contacts the
member directly it asks for confirmation first; pass --yes to skip the
prompt in scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: runBillsRemind,
}

func init() {
	rootCmd.AddCommand(billsCmd)
	billsCmd.AddCommand(billsListCmd, billsCreateCmd, billsCollectCmd, billsOverdueCmd, billsInvoiceCmd, billsRemindCmd)

	billsListCmd.Flags().String("status", billing.FilterAll, "Filter by status (All, Pending, Paid, Overdue)")
	billsListCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	billsListCmd.Flags().StringP("output", "o", "", "Write JSON to a file")

	billsCreateCmd.Flags().String("member", "", "Member id (required)")
	billsCreateCmd.Flags().String("gym", "", "Gym id (required)")
	billsCreateCmd.Flags().String("plan", "", "Plan tier (Basic, Standard, Premium; defaults to the member's plan)")
	billsCreateCmd.Flags().Int64("amount", 0, "Amount in currency units (defaults to the plan price)")
	billsCreateCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, defaults to one month from today)")

	billsCollectCmd.Flags().String("method", "", "Payment method (Credit Card, UPI, Cash, Bank Transfer)")

	billsInvoiceCmd.Flags().StringP("output", "o", "", "Write the invoice JSON to a file")

	billsRemindCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// loadLedger builds the ledger and fills it from the backend.
func loadLedger(ctx context.Context) (*billing.Ledger, error) {
	gw, err := newGateway()
	if err != nil {
		return nil, err
	}
	ledger := billing.NewLedger(gw)
	if _, err := ledger.Load(ctx); err != nil {
		return nil, err
	}
	return ledger, nil
}

func runBillsList(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("bills")

	statusFilter, _ := cmd.Flags().GetString("status")
	asJSON, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")

	ledger, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}

	bills := ledger.FilterByStatus(statusFilter)
	stats := ledger.Stats()

	log.Info().
		Int("bills", len(bills)).
		Str("filter", statusFilter).
		Msg("Bills listed")

	if asJSON || outputPath != "" {
		return writeJSON(struct {
			Stats models.Stats  `json:"stats"`
			Bills []models.Bill `json:"bills"`
		}{stats, bills}, outputPath, log)
	}

	fmt.Printf("Total revenue: %d   Paid this month: %d   Pending: %d   Overdue: %d\n\n",
		stats.TotalRevenue, stats.PaidThisMonth, stats.Pending, stats.Overdue)

	if len(bills) == 0 {
		fmt.Println("No bills found")
		return nil
	}

	now := time.Now()
	table := newTable()
	fmt.Fprintln(table, "ID\tMEMBER\tGYM\tPLAN\tAMOUNT\tDUE\tSTATUS\tMETHOD")
	for _, b := range bills {
		method := b.PaymentMethod
		if method == "" {
			method = "N/A"
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			b.ID, b.MemberName, b.GymName, b.Plan, b.Amount, b.DueDate, b.DisplayStatus(now), method)
	}
	return table.Flush()
}

func runBillsCreate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("bills")
	ctx := cmd.Context()

	memberID, _ := cmd.Flags().GetString("member")
	gymID, _ := cmd.Flags().GetString("gym")
	plan, _ := cmd.Flags().GetString("plan")
	amount, _ := cmd.Flags().GetInt64("amount")
	dueStr, _ := cmd.Flags().GetString("due")

	gw, err := newGateway()
	if err != nil {
		return err
	}

	input, err := resolveBillInput(ctx, gw, memberID, gymID, plan, amount, dueStr)
	if err != nil {
		return err
	}

	ledger := billing.NewLedger(gw)
	bill, err := ledger.Create(ctx, input)
	if err != nil {
		if errors.Is(err, gateway.ErrValidation) {
			return fmt.Errorf("bill rejected: %w", err)
		}
		return err
	}

	log.Info().Str("bill_id", bill.ID).Msg("Bill created")
	fmt.Printf("Bill %s created for %s: %d due %s\n", bill.ID, bill.MemberName, bill.Amount, bill.DueDate)
	return nil
}

// resolveBillInput looks the member and gym up against the backend's current
// records and fills in the denormalized display names plus defaulted plan,
// amount and due date.
func resolveBillInput(ctx context.Context, gw *gateway.Client, memberID, gymID, plan string, amount int64, dueStr string) (models.BillInput, error) {
	if memberID == "" {
		return models.BillInput{}, fmt.Errorf("%w: --member is required", gateway.ErrValidation)
	}
	if gymID == "" {
		return models.BillInput{}, fmt.Errorf("%w: --gym is required", gateway.ErrValidation)
	}

	memberList, err := gw.ListMembers(ctx)
	if err != nil {
		return models.BillInput{}, err
	}
	var member *models.Member
	for i := range memberList {
		if memberList[i].ID == memberID {
			member = &memberList[i]
			break
		}
	}
	if member == nil {
		return models.BillInput{}, fmt.Errorf("member %s: %w", memberID, gateway.ErrNotFound)
	}

	gyms, err := gw.ListGyms(ctx)
	if err != nil {
		return models.BillInput{}, err
	}
	var gym *models.Gym
	for i := range gyms {
		if gyms[i].ID == gymID {
			gym = &gyms[i]
			break
		}
	}
	if gym == nil {
		return models.BillInput{}, fmt.Errorf("gym %s: %w", gymID, gateway.ErrNotFound)
	}

	if plan == "" {
		plan = member.Plan
	}
	if amount == 0 {
		amount = models.PlanPrice(plan)
	}

	due := models.NewDate(time.Now()).AddMonths(1)
	if dueStr != "" {
		due, err = models.ParseDate(dueStr)
		if err != nil {
			return models.BillInput{}, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
		}
	}

	return models.BillInput{
		MemberID:   member.ID,
		MemberName: member.Name,
		GymID:      gym.ID,
		GymName:    gym.GymName,
		Plan:       plan,
		Amount:     amount,
		DueDate:    due,
	}, nil
}

func runBillsCollect(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("bills")
	method, _ := cmd.Flags().GetString("method")

	ledger, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}

	bill, err := ledger.UpdateStatus(cmd.Context(), args[0], models.BillStatusPaid, method)
	if err != nil {
		return describeBillError(err, args[0])
	}

	log.Info().Str("bill_id", bill.ID).Str("method", bill.PaymentMethod).Msg("Payment collected")
	fmt.Printf("Bill %s marked Paid (%s, %d)\n", bill.ID, bill.PaymentMethod, bill.Amount)
	return nil
}

func runBillsOverdue(cmd *cobra.Command, args []string) error {
	ledger, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}

	bill, err := ledger.UpdateStatus(cmd.Context(), args[0], models.BillStatusOverdue, "")
	if err != nil {
		return describeBillError(err, args[0])
	}

	fmt.Printf("Bill %s marked Overdue\n", bill.ID)
	return nil
}

func runBillsInvoice(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("bills")
	outputPath, _ := cmd.Flags().GetString("output")

	ledger, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}

	invoice, err := ledger.GenerateInvoice(cmd.Context(), args[0])
	if err != nil {
		return describeBillError(err, args[0])
	}

	log.Info().
		Str("bill_id", args[0]).
		Str("invoice_number", invoice.InvoiceNumber).
		Msg("Invoice generated")
	return writeJSON(invoice, outputPath, log)
}

func runBillsRemind(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("bills")
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	ledger, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}

	confirm := billing.ConfirmFunc(confirmPrompt)
	if skipConfirm {
		confirm = func(string) bool { return true }
	}

	message, err := ledger.SendReminder(cmd.Context(), args[0], confirm)
	if err != nil {
		if errors.Is(err, billing.ErrReminderDeclined) {
			fmt.Println("Reminder cancelled")
			return nil
		}
		return describeBillError(err, args[0])
	}

	log.Info().Str("bill_id", args[0]).Msg("Reminder sent")
	fmt.Println(message)
	return nil
}

// describeBillError turns ledger errors into operator-friendly messages.
func describeBillError(err error, billID string) error {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		return fmt.Errorf("bill %s was not found; run 'fitsync bills list' to see current bills", billID)
	case errors.Is(err, billing.ErrInvalidTransition):
		return fmt.Errorf("that status change is not allowed: %w", err)
	case errors.Is(err, billing.ErrCreateInFlight):
		return fmt.Errorf("another bill submission is still in progress, wait for it to finish")
	default:
		return err
	}
}
