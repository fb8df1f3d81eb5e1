package gateway

import (
	"context"
	"errors"
	"time"
)

// HealthTimeout bounds the health probe so a dead backend is reported within a
// few seconds instead of hanging the console.
const HealthTimeout = 3 * time.Second

// HealthStatus reports backend reachability.
type HealthStatus struct {
	Connected     bool   `json:"connected"`
	DatabaseReady bool   `json:"databaseReady"`
	Message       string `json:"message"`
}

// Health probes the backend's health endpoint. It never returns an error:
// unreachable backends are reported through the status so callers can render
// the guidance instead of aborting.
func (c *Client) Health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	var body struct {
		MongoDBReady bool `json:"mongodbReady"`
	}
	err := c.get(ctx, "Health", "/health", nil, &body)
	switch {
	case err == nil:
		return HealthStatus{
			Connected:     true,
			DatabaseReady: body.MongoDBReady,
			Message:       "Backend is running",
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrConnectivity):
		return HealthStatus{
			Message: "Backend server is not responding. Please start it and try again",
		}
	default:
		return HealthStatus{
			Message: "Backend responded but with error: " + err.Error(),
		}
	}
}
