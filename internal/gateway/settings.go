package gateway

import (
	"context"

	"fitsync/pkg/models"
)

// GetSettings fetches the business-wide settings record. An empty response is
// filled in from the defaults so callers always get a complete record.
func (c *Client) GetSettings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()
	if err := c.get(ctx, "GetSettings", "/settings", nil, &settings); err != nil {
		return models.Settings{}, err
	}
	if settings.GymName == "" {
		settings.GymName = models.DefaultSettings().GymName
	}
	return settings, nil
}

// UpdateSettings replaces the settings record.
func (c *Client) UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	updated := settings
	if err := c.put(ctx, "UpdateSettings", "/settings", settings, &updated); err != nil {
		return models.Settings{}, err
	}
	return updated, nil
}
