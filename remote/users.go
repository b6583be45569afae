package remote

import (
	"context"

	"github.com/AndresWalter/petzone--template/models"
)

// ListUsers fetches the whole user collection.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, "GET", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser POSTs a new user record. The mock API does not enforce
// username uniqueness and neither do we.
func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, "POST", "/users", user, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}
