package gateway

import (
	"context"
	"net/url"

	"fitsync/pkg/models"
)

// ListAttendance fetches attendance records, optionally limited to one
// calendar date (YYYY-MM-DD).
func (c *Client) ListAttendance(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}

	var records []models.AttendanceRecord
	if err := c.get(ctx, "ListAttendance", "/attendance", query, &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Normalize()
	}
	return records, nil
}

// CreateAttendance records a member check-in.
func (c *Client) CreateAttendance(ctx context.Context, input models.AttendanceInput) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	if err := c.post(ctx, "CreateAttendance", "/attendance", input, &record); err != nil {
		return models.AttendanceRecord{}, err
	}
	record.Normalize()
	return record, nil
}

// UpdateAttendance corrects an existing attendance record.
func (c *Client) UpdateAttendance(ctx context.Context, id string, input models.AttendanceInput) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	if err := c.put(ctx, "UpdateAttendance", "/attendance/"+id, input, &record); err != nil {
		return models.AttendanceRecord{}, err
	}
	record.Normalize()
	return record, nil
}
