package models

import "time"

// AttendanceStatus records how a member checked in.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord is a single check-in entry.
type AttendanceRecord struct {
	ID          string           `json:"_id"`
	Member      Ref              `json:"memberId"`
	MemberName  string           `json:"memberName,omitempty"`
	CheckInTime time.Time        `json:"checkInTime"`
	Status      AttendanceStatus `json:"status"`
	SessionType string           `json:"sessionType,omitempty"`
}

// Normalize collapses populated member references into the flat shape.
func (a *AttendanceRecord) Normalize() {
	if a.MemberName == "" {
		a.MemberName = a.Member.Name
	}
	a.Member.Name = ""
}

// AttendanceInput is the payload for recording a check-in.
type AttendanceInput struct {
	MemberID    string           `json:"memberId" validate:"required"`
	MemberName  string           `json:"memberName"`
	Status      AttendanceStatus `json:"status" validate:"required,oneof=Present Late Absent"`
	SessionType string           `json:"sessionType,omitempty"`
}

// AttendanceSummary aggregates a day's records.
type AttendanceSummary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Late    int     `json:"late"`
	Absent  int     `json:"absent"`
	Rate    float64 `json:"rate"`
}

// SummarizeAttendance computes per-status counts and the attendance rate
// (present over total, as a percentage). An empty slice yields a zero rate.
func SummarizeAttendance(records []AttendanceRecord) AttendanceSummary {
	summary := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case AttendancePresent:
			summary.Present++
		case AttendanceLate:
			summary.Late++
		case AttendanceAbsent:
			summary.Absent++
		}
	}
	if summary.Total > 0 {
		summary.Rate = float64(summary.Present) / float64(summary.Total) * 100
	}
	return summary
}
