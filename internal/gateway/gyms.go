package gateway

import (
	"context"

	"fitsync/pkg/models"
)

// ListGyms fetches all registered gym locations.
func (c *Client) ListGyms(ctx context.Context) ([]models.Gym, error) {
	var gyms []models.Gym
	if err := c.get(ctx, "ListGyms", "/gyms", nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

// CreateGym registers a new gym location.
func (c *Client) CreateGym(ctx context.Context, input models.GymInput) (models.Gym, error) {
	var gym models.Gym
	if err := c.post(ctx, "CreateGym", "/gyms", input, &gym); err != nil {
		return models.Gym{}, err
	}
	return gym, nil
}

// UpdateGym updates an existing gym location.
func (c *Client) UpdateGym(ctx context.Context, id string, input models.GymInput) (models.Gym, error) {
	var gym models.Gym
	if err := c.put(ctx, "UpdateGym", "/gyms/"+id, input, &gym); err != nil {
		return models.Gym{}, err
	}
	return gym, nil
}

// DeleteGym removes a gym location.
func (c *Client) DeleteGym(ctx context.Context, id string) error {
	return c.delete(ctx, "DeleteGym", "/gyms/"+id)
}
