package rentora

import "context"

// BookingsService handles bookings.
type BookingsService struct {
	client *Client
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	PropertyID  int64  `json:"propertyId"`
	UserID      int64  `json:"userId"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status,omitempty"`
}

// Create books a property.
func (s *BookingsService) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var resp Booking
	if err := s.client.post(ctx, "/bookings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
