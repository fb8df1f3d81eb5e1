package gateway

import (
	"context"

	"fitsync/pkg/models"
)

// Login authenticates an operator and returns the session token.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.post(ctx, "Login", "/auth/login", body, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// Register creates an operator account and returns the session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp models.AuthResponse
	if err := c.post(ctx, "Register", "/auth/register", body, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}
