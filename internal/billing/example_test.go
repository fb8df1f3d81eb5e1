package billing_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fitsync/internal/billing"
	"fitsync/internal/gateway"
	"fitsync/pkg/models"
)

// Example demonstrates the basic bill lifecycle: load the collection, create a
// bill, collect it.
func Example() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Point the gateway at the backend API (including the /api path segment).
	gw := gateway.New("http://localhost:5000/api")
	ledger := billing.NewLedger(gw)

	// Load the full collection before doing anything else.
	bills, err := ledger.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load billing data: %v", err)
	}
	fmt.Printf("Loaded %d bills\n", len(bills))

	// Create a bill for a member. Input is validated locally before any
	// request is sent.
	due, _ := models.ParseDate("2026-09-30")
	bill, err := ledger.Create(ctx, models.BillInput{
		MemberID: "66f1a2b3c4d5e6f7a8b9c0d1",
		GymID:    "66f1a2b3c4d5e6f7a8b9c0d2",
		Plan:     models.PlanStandard,
		Amount:   models.PlanPrice(models.PlanStandard),
		DueDate:  due,
	})
	if err != nil {
		log.Fatalf("Failed to create bill: %v", err)
	}

	// Collect it. Omitting the payment method defaults to Cash.
	paid, err := ledger.UpdateStatus(ctx, bill.ID, models.BillStatusPaid, models.PaymentMethodUPI)
	if err != nil {
		log.Fatalf("Failed to collect bill: %v", err)
	}
	fmt.Printf("Collected %d via %s\n", paid.Amount, paid.PaymentMethod)
}

// ExampleLedger_Stats demonstrates the dashboard aggregates.
func ExampleLedger_Stats() {
	ctx := context.Background()

	ledger := billing.NewLedger(gateway.New("http://localhost:5000/api"))
	if _, err := ledger.Load(ctx); err != nil {
		log.Fatalf("Failed to load billing data: %v", err)
	}

	stats := ledger.Stats()
	fmt.Printf("Total revenue:   %d\n", stats.TotalRevenue)
	fmt.Printf("Paid this month: %d\n", stats.PaidThisMonth)
	fmt.Printf("Pending:         %d\n", stats.Pending)
	fmt.Printf("Overdue:         %d\n", stats.Overdue)
}

// ExampleLedger_SendReminder demonstrates the confirmation gate on reminders.
func ExampleLedger_SendReminder() {
	ctx := context.Background()

	ledger := billing.NewLedger(gateway.New("http://localhost:5000/api"))
	if _, err := ledger.Load(ctx); err != nil {
		log.Fatalf("Failed to load billing data: %v", err)
	}

	// The confirm callback runs before any request is issued. In a CLI this
	// would prompt the operator; returning false aborts the reminder.
	confirm := func(prompt string) bool {
		fmt.Println(prompt)
		return true
	}

	message, err := ledger.SendReminder(ctx, "66f1a2b3c4d5e6f7a8b9c0d3", confirm)
	if err != nil {
		if errors.Is(err, billing.ErrReminderDeclined) {
			log.Printf("Reminder cancelled by operator")
			return
		}
		log.Fatalf("Failed to send reminder: %v", err)
	}
	fmt.Println(message)
}

// ExampleLedger_errorHandling demonstrates mapping ledger errors onto the
// gateway sentinels.
func ExampleLedger_errorHandling() {
	ctx := context.Background()

	ledger := billing.NewLedger(gateway.New("http://localhost:5000/api"))
	if _, err := ledger.Load(ctx); err != nil {
		var connErr *gateway.ConnectivityError
		if errors.As(err, &connErr) {
			// Backend is unreachable. The error text tells the operator
			// to start the server.
			log.Fatalf("%v", connErr)
		}
		log.Fatalf("Failed to load billing data: %v", err)
	}

	_, err := ledger.UpdateStatus(ctx, "missing-bill", models.BillStatusPaid, "")
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		log.Printf("No such bill in the loaded collection")
	case errors.Is(err, billing.ErrInvalidTransition):
		log.Printf("That status change is not allowed")
	case err != nil:
		log.Fatalf("Failed to update bill: %v", err)
	}
}
