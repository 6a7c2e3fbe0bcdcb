package rentora

import (
	"context"
	"fmt"
)

// MyPropertiesService handles listings owned by the current user.
type MyPropertiesService struct {
	client *Client
}

// List returns all properties of the authenticated user.
func (s *MyPropertiesService) List(ctx context.Context) ([]Property, error) {
	var resp []Property
	if err := s.client.get(ctx, "/my-properties", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves one of the current user's properties by ID.
func (s *MyPropertiesService) Get(ctx context.Context, id int64) (*Property, error) {
	var resp Property
	if err := s.client.get(ctx, fmt.Sprintf("/my-properties/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create adds a new property owned by the current user.
func (s *MyPropertiesService) Create(ctx context.Context, input PropertyInput) (*Property, error) {
	var resp Property
	if err := s.client.post(ctx, "/my-properties", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update modifies an existing property owned by the current user.
func (s *MyPropertiesService) Update(ctx context.Context, id int64, input PropertyInput) (*Property, error) {
	var resp Property
	if err := s.client.put(ctx, fmt.Sprintf("/my-properties/%d", id), input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a property owned by the current user.
func (s *MyPropertiesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/my-properties/%d", id))
}
