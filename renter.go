package rentora

import (
	"context"
	"fmt"
)

// RenterService handles the renter-facing surface: dashboard, saved
// properties, applications, bookings, tours and price negotiations.
type RenterService struct {
	client *Client
}

// CreateApplicationRequest files a rental application.
type CreateApplicationRequest struct {
	UserID     int64  `json:"userId"`
	PropertyID int64  `json:"propertyId"`
	Status     string `json:"status,omitempty"`
}

// CreateTourRequest schedules a property tour.
type CreateTourRequest struct {
	UserID     int64  `json:"userId"`
	PropertyID int64  `json:"propertyId"`
	TourDate   string `json:"tourDate"`
	Status     string `json:"status,omitempty"`
}

// OfferRequest is a price negotiation offer on an application.
type OfferRequest struct {
	Offer  float64 `json:"offer"`
	Status string  `json:"status,omitempty"`
}

// Dashboard returns the renter overview metrics.
func (s *RenterService) Dashboard(ctx context.Context) (*RenterDashboard, error) {
	var resp RenterDashboard
	if err := s.client.get(ctx, "/renter/dashboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SavedProperties returns the renter's favorites.
func (s *RenterService) SavedProperties(ctx context.Context) ([]Property, error) {
	var resp []Property
	if err := s.client.get(ctx, "/renter/saved-properties", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SaveProperty adds a property to the renter's favorites.
func (s *RenterService) SaveProperty(ctx context.Context, propertyID int64) error {
	return s.client.post(ctx, fmt.Sprintf("/renter/saved-properties/%d", propertyID), nil, nil)
}

// CreateApplication files a rental application.
func (s *RenterService) CreateApplication(ctx context.Context, req CreateApplicationRequest) (*Application, error) {
	var resp Application
	if err := s.client.post(ctx, "/renter/applications", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateBooking books a property through the renter surface.
func (s *RenterService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var resp Booking
	if err := s.client.post(ctx, "/renter/bookings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTour schedules a property tour.
func (s *RenterService) CreateTour(ctx context.Context, req CreateTourRequest) error {
	return s.client.post(ctx, "/renter/tours", req, nil)
}

// CreateOffer places a price negotiation offer on an application.
func (s *RenterService) CreateOffer(ctx context.Context, applicationID int64, req OfferRequest) error {
	return s.client.post(ctx, fmt.Sprintf("/renter/negotiations/%d/offers", applicationID), req, nil)
}
