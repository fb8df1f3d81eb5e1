package billing

import (
	"time"

	"fitsync/pkg/models"
)

// ComputeStats aggregates a bill collection into the dashboard figures.
// It is pure: the result depends only on the bills and the reference time.
//
//   - TotalRevenue: sum of amounts over Paid bills, all time.
//   - PaidThisMonth: sum of amounts over Paid bills whose PaidAt falls in the
//     same calendar month and year as now. Paid bills without a PaidAt are
//     excluded; the record is inconsistent and must not inflate the figure.
//   - Pending / Overdue: sum of amounts by stored status.
//
// A missing amount contributes zero rather than failing the whole computation.
func ComputeStats(bills []models.Bill, now time.Time) models.Stats {
	var stats models.Stats
	for _, b := range bills {
		switch b.Status {
		case models.BillStatusPaid:
			stats.TotalRevenue += b.Amount
			if b.PaidAt != nil &&
				b.PaidAt.Month() == now.Month() &&
				b.PaidAt.Year() == now.Year() {
				stats.PaidThisMonth += b.Amount
			}
		case models.BillStatusPending:
			stats.Pending += b.Amount
		case models.BillStatusOverdue:
			stats.Overdue += b.Amount
		}
	}
	return stats
}

// CountByStatus returns how many bills carry the given stored status.
func CountByStatus(bills []models.Bill, status models.BillStatus) int {
	count := 0
	for _, b := range bills {
		if b.Status == status {
			count++
		}
	}
	return count
}
