package rentora

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rentora/rentora-go/session"
)

// AdminService handles moderation and platform administration.
//
// The status-transition endpoints (user status, property status,
// verification decision) take the bare enum value as a text/plain body.
// That is the backend contract, byte for byte; sending {"status": ...}
// is rejected.
type AdminService struct {
	client *Client
}

// DashboardMetrics returns the admin overview numbers.
func (s *AdminService) DashboardMetrics(ctx context.Context) (*AdminDashboard, error) {
	var resp AdminDashboard
	if err := s.client.get(ctx, "/admin/dashboard/metrics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Users returns one page of all platform users.
func (s *AdminService) Users(ctx context.Context, page, size int) (*Page[session.User], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var resp Page[session.User]
	if err := s.client.get(ctx, "/admin/users", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUserStatus suspends, activates or verifies a user account.
func (s *AdminService) UpdateUserStatus(ctx context.Context, id int64, status session.UserStatus) error {
	return s.client.sendText(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/status", id), string(status))
}

// Properties returns all listings, optionally filtered by moderation
// status. An empty status means all.
func (s *AdminService) Properties(ctx context.Context, status PropertyStatus) ([]Property, error) {
	var q url.Values
	if status != "" {
		q = url.Values{}
		q.Set("status", string(status))
	}

	var resp []Property
	if err := s.client.get(ctx, "/admin/properties", q, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdatePropertyStatus approves or rejects a listing.
func (s *AdminService) UpdatePropertyStatus(ctx context.Context, id int64, status PropertyStatus) error {
	return s.client.sendText(ctx, http.MethodPost, fmt.Sprintf("/admin/properties/%d/status", id), string(status))
}

// PendingVerifications returns the identity verification queue.
func (s *AdminService) PendingVerifications(ctx context.Context) ([]Verification, error) {
	var resp []Verification
	if err := s.client.get(ctx, "/admin/verifications", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ResolveVerification approves or rejects a pending identity
// verification.
func (s *AdminService) ResolveVerification(ctx context.Context, id int64, action VerificationAction) error {
	return s.client.sendText(ctx, http.MethodPost, fmt.Sprintf("/admin/verifications/%d/action", id), string(action))
}

// Reports returns all user-filed reports.
func (s *AdminService) Reports(ctx context.Context) ([]Report, error) {
	var resp []Report
	if err := s.client.get(ctx, "/admin/reports", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FeaturedProperties returns the curated homepage list.
func (s *AdminService) FeaturedProperties(ctx context.Context) ([]Property, error) {
	var resp []Property
	if err := s.client.get(ctx, "/admin/featured-properties", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateFeaturedProperties replaces the curated homepage list.
func (s *AdminService) UpdateFeaturedProperties(ctx context.Context, propertyIDs []int64) error {
	return s.client.put(ctx, "/admin/featured-properties", propertyIDs, nil)
}
