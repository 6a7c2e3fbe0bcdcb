package rentora

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rentora/rentora-go/session"
)

// UsersService handles user profile lookups.
type UsersService struct {
	client *Client
}

// Get retrieves a user by ID.
func (s *UsersService) Get(ctx context.Context, id int64) (*session.User, error) {
	var resp session.User
	if err := s.client.get(ctx, fmt.Sprintf("/v1/users/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByEmail retrieves a user by email address.
func (s *UsersService) GetByEmail(ctx context.Context, email string) (*session.User, error) {
	var resp session.User
	path := fmt.Sprintf("/v1/users/email/%s", url.PathEscape(email))
	if err := s.client.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
