package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitsync/pkg/models"
)

func billWithPaidAt(amount int64, status models.BillStatus, paidAt *time.Time) models.Bill {
	return models.Bill{Amount: amount, Status: status, PaidAt: paidAt}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.July, 5, 9, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		bills    []models.Bill
		expected models.Stats
	}{
		{
			name: "one bill per status",
			bills: []models.Bill{
				billWithPaidAt(1500, models.BillStatusPending, nil),
				billWithPaidAt(2000, models.BillStatusPaid, &thisMonth),
				billWithPaidAt(2500, models.BillStatusOverdue, nil),
			},
			expected: models.Stats{TotalRevenue: 2000, PaidThisMonth: 2000, Pending: 1500, Overdue: 2500},
		},
		{
			name: "payments outside the current month count toward revenue only",
			bills: []models.Bill{
				billWithPaidAt(2000, models.BillStatusPaid, &lastMonth),
				billWithPaidAt(1500, models.BillStatusPaid, &lastYear),
				billWithPaidAt(2500, models.BillStatusPaid, &thisMonth),
			},
			expected: models.Stats{TotalRevenue: 6000, PaidThisMonth: 2500},
		},
		{
			name: "paid bill without timestamp is excluded from the monthly figure",
			bills: []models.Bill{
				billWithPaidAt(2000, models.BillStatusPaid, nil),
			},
			expected: models.Stats{TotalRevenue: 2000, PaidThisMonth: 0},
		},
		{
			name: "missing amounts contribute zero",
			bills: []models.Bill{
				billWithPaidAt(0, models.BillStatusPending, nil),
				billWithPaidAt(0, models.BillStatusPaid, &thisMonth),
				billWithPaidAt(1500, models.BillStatusPending, nil),
			},
			expected: models.Stats{Pending: 1500},
		},
		{
			name:     "empty collection",
			bills:    nil,
			expected: models.Stats{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeStats(tc.bills, now))
		})
	}
}

func TestComputeStatsAccountsForEveryStatusedBill(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	paidAt := now.Add(-24 * time.Hour)

	bills := []models.Bill{
		billWithPaidAt(100, models.BillStatusPending, nil),
		billWithPaidAt(200, models.BillStatusOverdue, nil),
		billWithPaidAt(300, models.BillStatusPaid, &paidAt),
		billWithPaidAt(400, models.BillStatusPending, nil),
		billWithPaidAt(500, models.BillStatusPaid, nil),
	}

	var total int64
	for _, b := range bills {
		total += b.Amount
	}

	stats := ComputeStats(bills, now)
	assert.Equal(t, total, stats.TotalRevenue+stats.Pending+stats.Overdue,
		"every bill with a known status must land in exactly one bucket")
}

func TestComputeStatsIsDeterministic(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	paidAt := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	bills := []models.Bill{
		billWithPaidAt(1500, models.BillStatusPaid, &paidAt),
		billWithPaidAt(2000, models.BillStatusPending, nil),
	}

	first := ComputeStats(bills, now)
	second := ComputeStats(bills, now)
	assert.Equal(t, first, second)
}

func TestCountByStatus(t *testing.T) {
	bills := []models.Bill{
		{Status: models.BillStatusPaid},
		{Status: models.BillStatusPending},
		{Status: models.BillStatusPaid},
	}

	assert.Equal(t, 2, CountByStatus(bills, models.BillStatusPaid))
	assert.Equal(t, 1, CountByStatus(bills, models.BillStatusPending))
	assert.Equal(t, 0, CountByStatus(bills, models.BillStatusOverdue))
}
