package rentora

import "context"

// AmenitiesService handles the amenity catalogue.
type AmenitiesService struct {
	client *Client
}

// List returns all available amenities.
func (s *AmenitiesService) List(ctx context.Context) ([]Amenity, error) {
	var resp []Amenity
	if err := s.client.get(ctx, "/amenities", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
