// Package rentora provides the Go client for the Rentora rental
// marketplace REST API.
//
// One Client carries the HTTP transport, the credential injection and the
// global 401 handling; per-domain services (Auth, Properties, Admin,
// Landlord, Renter, ...) expose typed endpoint calls on top of it.
package rentora

import (
	"net/url"
	"strconv"

	"github.com/rentora/rentora-go/session"
)

// PropertyStatus is the moderation status of a listing.
type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "PENDING"
	PropertyStatusLive     PropertyStatus = "LIVE"
	PropertyStatusRejected PropertyStatus = "REJECTED"
	PropertyStatusDeleted  PropertyStatus = "DELETED"
)

// VerificationAction is the decision on a pending identity verification.
type VerificationAction string

const (
	VerificationApprove VerificationAction = "APPROVE"
	VerificationReject  VerificationAction = "REJECT"
)

// Image is a property image.
type Image struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// Amenity is a property amenity.
type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Property is a listing as returned by the backend.
type Property struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Address         string         `json:"address"`
	AnnualPrice     float64        `json:"annualPrice"`
	NightlyPrice    float64        `json:"nightlyPrice,omitempty"`
	Bedrooms        int            `json:"bedrooms"`
	Bathrooms       int            `json:"bathrooms"`
	Type            string         `json:"type,omitempty"`
	Coordinates     string         `json:"coordinates,omitempty"`
	Status          PropertyStatus `json:"status,omitempty"`
	LandlordID      int64          `json:"landlordId"`
	AverageRating   float64        `json:"averageRating,omitempty"`
	NumberOfReviews int            `json:"numberOfReviews,omitempty"`
	Images          []Image        `json:"images,omitempty"`
	Amenities       []Amenity      `json:"amenities,omitempty"`
}

// PropertyInput is the payload for creating or updating a listing. Zero
// fields are omitted so partial updates stay partial.
type PropertyInput struct {
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	Address      string  `json:"address,omitempty"`
	AnnualPrice  float64 `json:"annualPrice,omitempty"`
	NightlyPrice float64 `json:"nightlyPrice,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"`
	Bathrooms    int     `json:"bathrooms,omitempty"`
	Type         string  `json:"type,omitempty"`
	Coordinates  string  `json:"coordinates,omitempty"`
	AmenityIDs   []int64 `json:"amenityIds,omitempty"`
}

// Page is the server-side pagination envelope (Spring style).
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

// PropertyFilter narrows a property search. Nil means no filtering.
type PropertyFilter struct {
	Address      string
	MinPrice     float64
	MaxPrice     float64
	MinBedrooms  int
	MaxBedrooms  int
	MinBathrooms int
	MaxBathrooms int
}

// query encodes the filter into request parameters, skipping zero values.
func (f *PropertyFilter) query(q url.Values) {
	if f == nil {
		return
	}
	if f.Address != "" {
		q.Set("address", f.Address)
	}
	setFloat := func(key string, v float64) {
		if v > 0 {
			q.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	setInt := func(key string, v int) {
		if v > 0 {
			q.Set(key, strconv.Itoa(v))
		}
	}
	setFloat("minPrice", f.MinPrice)
	setFloat("maxPrice", f.MaxPrice)
	setInt("minBedrooms", f.MinBedrooms)
	setInt("maxBedrooms", f.MaxBedrooms)
	setInt("minBathrooms", f.MinBathrooms)
	setInt("maxBathrooms", f.MaxBathrooms)
}

// Booking is a confirmed or requested stay.
type Booking struct {
	ID          int64     `json:"id"`
	Property    *Property `json:"property,omitempty"`
	BookingDate string    `json:"bookingDate"`
	Status      string    `json:"status"`
}

// Application is a rental application filed by a renter.
type Application struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	PropertyID int64     `json:"propertyId"`
	Property   *Property `json:"property,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  string    `json:"createdAt,omitempty"`
}

// Verification is a pending identity verification in the admin queue.
type Verification struct {
	ID          int64         `json:"id"`
	User        *session.User `json:"user,omitempty"`
	DocumentURL string        `json:"documentUrl,omitempty"`
	Status      string        `json:"status"`
	SubmittedAt string        `json:"submittedAt,omitempty"`
}

// Report is a user-filed complaint visible to admins.
type Report struct {
	ID         int64         `json:"id"`
	Reporter   *session.User `json:"reporter,omitempty"`
	TargetType string        `json:"targetType"`
	TargetID   int64         `json:"targetId"`
	Reason     string        `json:"reason"`
	Status     string        `json:"status"`
	CreatedAt  string        `json:"createdAt,omitempty"`
}

// Message is one message in a conversation.
type Message struct {
	ID        int64         `json:"id"`
	Sender    *session.User `json:"sender,omitempty"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"`
}

// Conversation links two users around a property.
type Conversation struct {
	ID       int64         `json:"id"`
	User1    *session.User `json:"user1,omitempty"`
	User2    *session.User `json:"user2,omitempty"`
	Property *Property     `json:"property,omitempty"`
}

// Review is a property review.
type Review struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	TenantID   int64  `json:"tenantId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// RenterDashboard holds the renter home-screen metrics.
type RenterDashboard struct {
	SavedPropertiesCount    int     `json:"savedPropertiesCount"`
	ActiveApplicationsCount int     `json:"activeApplicationsCount"`
	UpcomingBookingsCount   int     `json:"upcomingBookingsCount"`
	TotalSpent              float64 `json:"totalSpent"`
}

// LandlordDashboard holds the landlord home-screen metrics.
type LandlordDashboard struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	OccupancyRate   float64 `json:"occupancyRate"`
	TotalProperties int     `json:"totalProperties"`
	ActiveListings  int     `json:"activeListings"`
}

// AdminDashboard holds the admin overview metrics.
type AdminDashboard struct {
	TotalUsers           int `json:"totalUsers"`
	TotalProperties      int `json:"totalProperties"`
	PendingVerifications int `json:"pendingVerifications"`
	OpenReports          int `json:"openReports"`
}
