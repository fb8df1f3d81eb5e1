package gateway

import (
	"context"
	"net/url"

	"fitsync/pkg/models"
)

// TrainerFilter narrows a trainer listing. Zero values mean no filtering.
type TrainerFilter struct {
	Specialization string
	Search         string
}

// ListTrainers fetches trainers, optionally filtered by specialization and a
// free-text search over name and contact fields.
func (c *Client) ListTrainers(ctx context.Context, filter TrainerFilter) ([]models.Trainer, error) {
	query := url.Values{}
	if filter.Specialization != "" {
		query.Set("specialization", filter.Specialization)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var trainers []models.Trainer
	if err := c.get(ctx, "ListTrainers", "/trainers", query, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// GetTrainer fetches one trainer by id.
func (c *Client) GetTrainer(ctx context.Context, id string) (models.Trainer, error) {
	var trainer models.Trainer
	if err := c.get(ctx, "GetTrainer", "/trainers/"+id, nil, &trainer); err != nil {
		return models.Trainer{}, err
	}
	return trainer, nil
}

// CreateTrainer adds a trainer profile.
func (c *Client) CreateTrainer(ctx context.Context, input models.TrainerInput) (models.Trainer, error) {
	var trainer models.Trainer
	if err := c.post(ctx, "CreateTrainer", "/trainers", input, &trainer); err != nil {
		return models.Trainer{}, err
	}
	return trainer, nil
}

// UpdateTrainer updates a trainer profile.
func (c *Client) UpdateTrainer(ctx context.Context, id string, input models.TrainerInput) (models.Trainer, error) {
	var trainer models.Trainer
	if err := c.put(ctx, "UpdateTrainer", "/trainers/"+id, input, &trainer); err != nil {
		return models.Trainer{}, err
	}
	return trainer, nil
}

// DeleteTrainer removes a trainer profile.
func (c *Client) DeleteTrainer(ctx context.Context, id string) error {
	return c.delete(ctx, "DeleteTrainer", "/trainers/"+id)
}
