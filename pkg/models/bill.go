package models

import "time"

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "Pending"
	BillStatusPaid    BillStatus = "Paid"
	BillStatusOverdue BillStatus = "Overdue"
)

// Valid reports whether s is one of the known bill statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue:
		return true
	}
	return false
}

// Payment methods accepted when a bill is collected.
const (
	PaymentMethodCreditCard   = "Credit Card"
	PaymentMethodUPI          = "UPI"
	PaymentMethodCash         = "Cash"
	PaymentMethodBankTransfer = "Bank Transfer"
)

// Bill is a single billing record as served by the gateway.
type Bill struct {
	ID            string     `json:"_id"`
	Member        Ref        `json:"memberId"`
	MemberName    string     `json:"memberName,omitempty"`
	Gym           Ref        `json:"gymId"`
	GymName       string     `json:"gymName,omitempty"`
	Plan          string     `json:"plan"`
	Amount        int64      `json:"amount"`
	DueDate       Date       `json:"dueDate"`
	Status        BillStatus `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt,omitempty"`
}

// Normalize collapses the two historical response shapes (flat name fields vs
// populated member/gym objects) into the canonical flat shape. After Normalize,
// MemberName and GymName are authoritative and the refs carry only ids.
func (b *Bill) Normalize() {
	if b.MemberName == "" {
		b.MemberName = b.Member.Name
	}
	if b.GymName == "" {
		b.GymName = b.Gym.Name
	}
	b.Member.Name = ""
	b.Gym.Name = ""
}

// DisplayStatus is the read-time status of the bill: a Pending bill past its
// due date displays as Overdue without the stored status changing. The stored
// status remains the source of truth for transitions.
func (b *Bill) DisplayStatus(now time.Time) BillStatus {
	if b.Status == BillStatusPending && !b.DueDate.IsZero() && b.DueDate.Time().Before(now.Truncate(24*time.Hour)) {
		return BillStatusOverdue
	}
	return b.Status
}

// BillInput is the payload for creating a bill. MemberID and GymID must
// reference currently loaded records.
type BillInput struct {
	MemberID      string `json:"memberId" validate:"required"`
	MemberName    string `json:"memberName"`
	GymID         string `json:"gymId" validate:"required"`
	GymName       string `json:"gymName"`
	Plan          string `json:"plan" validate:"required,oneof=Basic Standard Premium"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	DueDate       Date   `json:"dueDate" validate:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

// BillUpdate is the payload for a status transition.
type BillUpdate struct {
	Status        BillStatus `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
}

// Invoice is a read-only projection of a bill with denormalized member contact
// details. It is generated on demand by the gateway and never persisted here.
type Invoice struct {
	InvoiceNumber string     `json:"invoiceNumber"`
	MemberName    string     `json:"memberName"`
	MemberEmail   string     `json:"memberEmail,omitempty"`
	MemberPhone   string     `json:"memberPhone,omitempty"`
	GymName       string     `json:"gymName,omitempty"`
	Date          string     `json:"date"`
	Plan          string     `json:"plan"`
	Amount        int64      `json:"amount"`
	DueDate       Date       `json:"dueDate"`
	Status        BillStatus `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
}

// Stats are the billing aggregates shown on the dashboard. All values are in
// integer currency units.
type Stats struct {
	TotalRevenue  int64 `json:"totalRevenue"`
	PaidThisMonth int64 `json:"paidThisMonth"`
	Pending       int64 `json:"pending"`
	Overdue       int64 `json:"overdue"`
}
