package billing

import "errors"

// Common billing errors
var (
	// ErrInvalidTransition is returned when a status change is not one of the
	// legal lifecycle moves (Pending to Paid, Pending to Overdue, Overdue to
	// Paid). Paid is terminal.
	ErrInvalidTransition = errors.New("invalid bill status transition")

	// ErrCreateInFlight is returned when a bill creation is submitted while a
	// previous one has not completed. This is the double-submit guard.
	ErrCreateInFlight = errors.New("a bill creation is already in progress")

	// ErrReminderDeclined is returned when the operator does not confirm
	// sending a payment reminder. No request is issued.
	ErrReminderDeclined = errors.New("reminder not confirmed")
)
