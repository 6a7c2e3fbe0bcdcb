package rentora

import (
	"context"
	"fmt"
	"io"
)

// LandlordService handles the landlord-facing surface: dashboard,
// listings, media, availability and incoming requests.
type LandlordService struct {
	client *Client
}

// PricingUpdate adjusts a listing's prices. Zero fields are left
// untouched.
type PricingUpdate struct {
	AnnualPrice  float64 `json:"annualPrice,omitempty"`
	NightlyPrice float64 `json:"nightlyPrice,omitempty"`
}

// Dashboard returns the landlord overview metrics.
func (s *LandlordService) Dashboard(ctx context.Context) (*LandlordDashboard, error) {
	var resp LandlordDashboard
	if err := s.client.get(ctx, "/landlord/dashboard/metrics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Properties returns the landlord's own listings.
func (s *LandlordService) Properties(ctx context.Context) ([]Property, error) {
	var resp []Property
	if err := s.client.get(ctx, "/landlord/properties", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Property retrieves one of the landlord's listings by ID.
func (s *LandlordService) Property(ctx context.Context, id int64) (*Property, error) {
	var resp Property
	if err := s.client.get(ctx, fmt.Sprintf("/landlord/properties/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateProperty creates a new listing. It enters the moderation queue as
// PENDING.
func (s *LandlordService) CreateProperty(ctx context.Context, input PropertyInput) (*Property, error) {
	var resp Property
	if err := s.client.post(ctx, "/landlord/properties", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProperty modifies an existing listing.
func (s *LandlordService) UpdateProperty(ctx context.Context, id int64, input PropertyInput) (*Property, error) {
	var resp Property
	if err := s.client.put(ctx, fmt.Sprintf("/landlord/properties/%d", id), input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePricing changes a listing's prices.
func (s *LandlordService) UpdatePricing(ctx context.Context, id int64, pricing PricingUpdate) (*Property, error) {
	var resp Property
	if err := s.client.put(ctx, fmt.Sprintf("/landlord/properties/%d/pricing", id), pricing, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadMedia attaches an image or video to a listing. The file goes up
// as a multipart form with a single "file" field.
func (s *LandlordService) UploadMedia(ctx context.Context, id int64, filename string, file io.Reader) (*Image, error) {
	var resp Image
	if err := s.client.upload(ctx, fmt.Sprintf("/landlord/properties/%d/media", id), filename, file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Availability returns the bookings blocking a listing's calendar.
func (s *LandlordService) Availability(ctx context.Context, id int64) ([]Booking, error) {
	var resp []Booking
	if err := s.client.get(ctx, fmt.Sprintf("/landlord/properties/%d/availability", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Applications returns rental applications filed against the landlord's
// listings.
func (s *LandlordService) Applications(ctx context.Context) ([]Application, error) {
	var resp []Application
	if err := s.client.get(ctx, "/landlord/applications", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BookingRequests returns pending booking requests.
func (s *LandlordService) BookingRequests(ctx context.Context) ([]Booking, error) {
	var resp []Booking
	if err := s.client.get(ctx, "/landlord/requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
