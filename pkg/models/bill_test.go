package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefAcceptsBothShapes(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected Ref
	}{
		{"plain id", `"m1"`, Ref{ID: "m1"}},
		{"populated member", `{"_id":"m1","name":"Asha Rao"}`, Ref{ID: "m1", Name: "Asha Rao"}},
		{"populated gym", `{"_id":"g1","gymName":"FitSync Central"}`, Ref{ID: "g1", Name: "FitSync Central"}},
		{"null", `null`, Ref{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ref Ref
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &ref))
			assert.Equal(t, tc.expected, ref)
		})
	}
}

func TestRefAlwaysSerializesAsID(t *testing.T) {
	out, err := json.Marshal(Ref{ID: "m1", Name: "Asha Rao"})
	require.NoError(t, err)
	assert.Equal(t, `"m1"`, string(out))
}

func TestBillNormalizePrefersFlatNames(t *testing.T) {
	bill := Bill{
		Member:     Ref{ID: "m1", Name: "From Populated Ref"},
		MemberName: "Asha Rao",
		Gym:        Ref{ID: "g1", Name: "FitSync North"},
	}
	bill.Normalize()

	assert.Equal(t, "Asha Rao", bill.MemberName, "an explicit flat name wins over the populated ref")
	assert.Equal(t, "FitSync North", bill.GymName, "a missing flat name is filled from the ref")
	assert.Empty(t, bill.Member.Name)
	assert.Empty(t, bill.Gym.Name)
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		bill     Bill
		expected BillStatus
	}{
		{
			"pending past due displays overdue",
			Bill{Status: BillStatusPending, DueDate: NewDate(now.AddDate(0, 0, -3))},
			BillStatusOverdue,
		},
		{
			"pending before due stays pending",
			Bill{Status: BillStatusPending, DueDate: NewDate(now.AddDate(0, 0, 3))},
			BillStatusPending,
		},
		{
			"paid never displays overdue",
			Bill{Status: BillStatusPaid, DueDate: NewDate(now.AddDate(0, 0, -30))},
			BillStatusPaid,
		},
		{
			"pending without a due date stays pending",
			Bill{Status: BillStatusPending},
			BillStatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.bill.DisplayStatus(now))
		})
	}
}

func TestDateDecodesBothLayouts(t *testing.T) {
	var short, long Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-30"`), &short))
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-30T18:30:00.000Z"`), &long))

	assert.Equal(t, "2026-09-30", short.String())
	assert.Equal(t, "2026-09-30", long.String())

	out, err := json.Marshal(long)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-30"`, string(out))
}

func TestDateAddMonths(t *testing.T) {
	d, err := ParseDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", d.AddMonths(1).String())

	// Month-end rolls forward like the backend does.
	endOfMonth, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", endOfMonth.AddMonths(1).String())
}

func TestPlanPrice(t *testing.T) {
	assert.Equal(t, int64(1500), PlanPrice(PlanBasic))
	assert.Equal(t, int64(2000), PlanPrice(PlanStandard))
	assert.Equal(t, int64(2500), PlanPrice(PlanPremium))
	assert.Equal(t, int64(1500), PlanPrice("Platinum"), "unknown plans bill at the Basic tier")
}

func TestSummarizeAttendance(t *testing.T) {
	records := []AttendanceRecord{
		{Status: AttendancePresent},
		{Status: AttendancePresent},
		{Status: AttendanceLate},
		{Status: AttendanceAbsent},
	}

	summary := SummarizeAttendance(records)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Absent)
	assert.InDelta(t, 50.0, summary.Rate, 0.01)

	assert.Zero(t, SummarizeAttendance(nil).Rate)
}
