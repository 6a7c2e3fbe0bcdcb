package rentora

import "context"

// ReviewsService handles property reviews.
type ReviewsService struct {
	client *Client
}

// CreateReviewRequest is the payload for Create.
type CreateReviewRequest struct {
	PropertyID int64  `json:"propertyId"`
	TenantID   int64  `json:"tenantId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Create posts a review for a property.
func (s *ReviewsService) Create(ctx context.Context, req CreateReviewRequest) (*Review, error) {
	var resp Review
	if err := s.client.post(ctx, "/reviews", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
