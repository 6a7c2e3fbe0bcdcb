package rentora

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PropertiesService handles the public property catalogue.
type PropertiesService struct {
	client *Client
}

// List returns one page of properties matching the filter.
//
// Example:
//
//	page, err := client.Properties.List(ctx, &rentora.PropertyFilter{
//	    Address:  "Lisbon",
//	    MaxPrice: 24000,
//	}, 0, 10)
func (s *PropertiesService) List(ctx context.Context, filter *PropertyFilter, page, size int) (*Page[Property], error) {
	q := url.Values{}
	filter.query(q)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var resp Page[Property]
	if err := s.client.get(ctx, "/properties", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get retrieves a property by ID.
func (s *PropertiesService) Get(ctx context.Context, id int64) (*Property, error) {
	var resp Property
	if err := s.client.get(ctx, fmt.Sprintf("/properties/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create submits a new listing to the public catalogue.
func (s *PropertiesService) Create(ctx context.Context, input PropertyInput) (*Property, error) {
	var resp Property
	if err := s.client.post(ctx, "/properties", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
