// Package billing owns the client-side view of the bill collection: loading it
// from the gateway, creating bills, driving status transitions, generating
// invoice projections and computing the dashboard aggregates.
//
// Every mutating operation is all-or-nothing from the caller's perspective:
// success fully updates one record (or replaces the whole collection on load),
// failure leaves the collection untouched.
package billing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fitsync/internal/gateway"
	"fitsync/internal/logger"
	"fitsync/pkg/models"
)

// FilterAll is the identity status filter.
const FilterAll = "All"

// Gateway is the slice of the backend API the ledger depends on.
type Gateway interface {
	ListBills(ctx context.Context) ([]models.Bill, error)
	CreateBill(ctx context.Context, input models.BillInput, idempotencyKey string) (models.Bill, error)
	UpdateBill(ctx context.Context, id string, update models.BillUpdate) (models.Bill, error)
	GenerateInvoice(ctx context.Context, id string) (models.Invoice, error)
	SendReminder(ctx context.Context, id string) (string, error)
}

// ConfirmFunc asks the operator to approve a side-effecting action. Returning
// false aborts the action before any request is issued.
type ConfirmFunc func(prompt string) bool

// Ledger maintains the in-memory bill collection for one console session.
type Ledger struct {
	gw       Gateway
	log      zerolog.Logger
	validate *validator.Validate
	now      func() time.Time

	mu       sync.Mutex
	bills    []models.Bill
	creating bool
}

// NewLedger creates a ledger backed by the given gateway.
func NewLedger(gw Gateway) *Ledger {
	return &Ledger{
		gw:       gw,
		log:      logger.WithComponent("billing"),
		validate: validator.New(),
		now:      time.Now,
	}
}

// Load fetches the full bill collection and replaces the in-memory copy. On
// failure the previous collection is kept.
func (l *Ledger) Load(ctx context.Context) ([]models.Bill, error) {
	bills, err := l.gw.ListBills(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("Failed to load billing data")
		return nil, fmt.Errorf("failed to load billing data: %w", err)
	}

	l.mu.Lock()
	l.bills = bills
	l.mu.Unlock()

	l.log.Info().Int("bills", len(bills)).Msg("Bill collection loaded")
	return l.Bills(), nil
}

// Bills returns a copy of the current collection.
func (l *Ledger) Bills() []models.Bill {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Bill, len(l.bills))
	copy(out, l.bills)
	return out
}

// Create validates the input locally, then submits it with a fresh idempotency
// token. Validation failures never reach the network. The persisted record is
// appended to the collection.
func (l *Ledger) Create(ctx context.Context, input models.BillInput) (models.Bill, error) {
	if err := l.validate.Struct(input); err != nil {
		l.log.Warn().Err(err).Msg("Bill input rejected before submission")
		return models.Bill{}, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
	}

	l.mu.Lock()
	if l.creating {
		l.mu.Unlock()
		return models.Bill{}, ErrCreateInFlight
	}
	l.creating = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.creating = false
		l.mu.Unlock()
	}()

	key := uuid.NewString()
	bill, err := l.gw.CreateBill(ctx, input, key)
	if err != nil {
		l.log.Error().Err(err).Str("idempotency_key", key).Msg("Failed to create bill")
		return models.Bill{}, err
	}

	l.mu.Lock()
	l.bills = append(l.bills, bill)
	l.mu.Unlock()

	l.log.Info().
		Str("bill_id", bill.ID).
		Str("member", bill.MemberName).
		Int64("amount", bill.Amount).
		Msg("Bill created")
	return bill, nil
}

// UpdateStatus applies a status transition. Legal moves are Pending to Paid,
// Pending to Overdue and Overdue to Paid. Marking a bill Paid stamps PaidAt
// and requires a payment method, defaulting to Cash when the caller omits one.
// On success exactly the one record is replaced in the collection.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, status models.BillStatus, paymentMethod string) (models.Bill, error) {
	if !status.Valid() {
		return models.Bill{}, fmt.Errorf("%w: unknown status %q", gateway.ErrValidation, status)
	}

	current, ok := l.find(id)
	if !ok {
		return models.Bill{}, fmt.Errorf("bill %s: %w", id, gateway.ErrNotFound)
	}
	if !transitionAllowed(current.Status, status) {
		return models.Bill{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, status)
	}

	update := models.BillUpdate{Status: status}
	if status == models.BillStatusPaid {
		if paymentMethod == "" {
			paymentMethod = models.PaymentMethodCash
		}
		update.PaymentMethod = paymentMethod
	}

	bill, err := l.gw.UpdateBill(ctx, id, update)
	if err != nil {
		l.log.Error().Err(err).Str("bill_id", id).Msg("Failed to update bill status")
		return models.Bill{}, err
	}

	// The backend is authoritative, but older deployments do not echo the
	// payment fields back. Fill them in from the request.
	if status == models.BillStatusPaid {
		if bill.PaidAt == nil {
			paidAt := l.now()
			bill.PaidAt = &paidAt
		}
		if bill.PaymentMethod == "" {
			bill.PaymentMethod = update.PaymentMethod
		}
	}

	l.replace(bill)

	l.log.Info().
		Str("bill_id", bill.ID).
		Str("status", string(bill.Status)).
		Str("payment_method", bill.PaymentMethod).
		Msg("Bill status updated")
	return bill, nil
}

// GenerateInvoice produces the read-only invoice projection for a bill. The
// bill must be present in the loaded collection. The collection is never
// mutated, so repeated calls yield structurally equal invoices.
func (l *Ledger) GenerateInvoice(ctx context.Context, id string) (models.Invoice, error) {
	if _, ok := l.find(id); !ok {
		return models.Invoice{}, fmt.Errorf("bill %s: %w", id, gateway.ErrNotFound)
	}

	invoice, err := l.gw.GenerateInvoice(ctx, id)
	if err != nil {
		l.log.Error().Err(err).Str("bill_id", id).Msg("Failed to generate invoice")
		return models.Invoice{}, err
	}
	return invoice, nil
}

// SendReminder sends a payment reminder for a bill after the operator confirms
// it. The reminder triggers outbound email to the member, so without a
// confirmation no request is issued and ErrReminderDeclined is returned.
func (l *Ledger) SendReminder(ctx context.Context, id string, confirm ConfirmFunc) (string, error) {
	bill, ok := l.find(id)
	if !ok {
		return "", fmt.Errorf("bill %s: %w", id, gateway.ErrNotFound)
	}

	prompt := fmt.Sprintf("Send payment reminder to %s via email?", bill.MemberName)
	if confirm == nil || !confirm(prompt) {
		l.log.Info().Str("bill_id", id).Msg("Reminder declined by operator")
		return "", ErrReminderDeclined
	}

	message, err := l.gw.SendReminder(ctx, id)
	if err != nil {
		l.log.Error().Err(err).Str("bill_id", id).Msg("Failed to send reminder")
		return "", err
	}

	l.log.Info().Str("bill_id", id).Str("member", bill.MemberName).Msg("Payment reminder sent")
	return message, nil
}

// FilterByStatus returns the bills whose stored status matches the filter.
// FilterAll (and the legacy "All Status" label) is the identity filter.
func (l *Ledger) FilterByStatus(filter string) []models.Bill {
	bills := l.Bills()
	if filter == FilterAll || filter == "All Status" || filter == "" {
		return bills
	}

	filtered := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if string(b.Status) == filter {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Stats computes the aggregates over the current collection.
func (l *Ledger) Stats() models.Stats {
	return ComputeStats(l.Bills(), l.now())
}

func (l *Ledger) find(id string) (models.Bill, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.bills {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bill{}, false
}

func (l *Ledger) replace(bill models.Bill) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.bills {
		if l.bills[i].ID == bill.ID {
			l.bills[i] = bill
			return
		}
	}
}

// transitionAllowed reports whether moving from one status to another is a
// legal lifecycle move. There is no way out of Paid.
func transitionAllowed(from, to models.BillStatus) bool {
	switch from {
	case models.BillStatusPending:
		return to == models.BillStatusPaid || to == models.BillStatusOverdue
	case models.BillStatusOverdue:
		return to == models.BillStatusPaid
	}
	return false
}
