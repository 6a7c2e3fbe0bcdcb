package store

import (
	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/session"
)

// Seed populates the store with deterministic development fixtures: three
// accounts (one per role, password "password123"), a handful of listings
// in different moderation states, a pending verification, an open report
// and a seeded conversation.
func Seed(s *Store) {
	admin := &Account{
		User: session.User{
			ID: 1, FirstName: "Ada", LastName: "Admin",
			Email: "admin@rentora.dev", PhoneNumber: "+351000000001",
			Role: session.RoleAdmin, Status: session.UserStatusActive,
		},
		Password: "password123",
		Verified: true,
	}
	landlord := &Account{
		User: session.User{
			ID: 2, FirstName: "Luis", LastName: "Landlord",
			Email: "landlord@rentora.dev", PhoneNumber: "+351000000002",
			Role: session.RoleLandlord, Status: session.UserStatusVerified,
		},
		Password: "password123",
		Verified: true,
	}
	renter := &Account{
		User: session.User{
			ID: 3, FirstName: "Rita", LastName: "Renter",
			Email: "renter@rentora.dev", PhoneNumber: "+351000000003",
			Role: session.RoleRenter, Status: session.UserStatusActive,
		},
		Password: "password123",
		Verified: true,
	}
	s.AddAccount(admin)
	s.AddAccount(landlord)
	s.AddAccount(renter)

	s.mu.Lock()
	s.amenities = []rentora.Amenity{
		{ID: 1, Name: "WiFi"},
		{ID: 2, Name: "Parking"},
		{ID: 3, Name: "Air Conditioning"},
		{ID: 4, Name: "Washing Machine"},
		{ID: 5, Name: "Elevator"},
	}
	s.mu.Unlock()

	s.AddProperty(&rentora.Property{
		ID: 101, Title: "Sunny T2 near Alameda",
		Description: "Bright two-bedroom with a balcony over the park.",
		Address:     "Av. Almirante Reis 120, Lisbon",
		AnnualPrice: 18000, NightlyPrice: 85,
		Bedrooms: 2, Bathrooms: 1, Type: "APARTMENT",
		Status: rentora.PropertyStatusLive, LandlordID: 2,
		AverageRating: 4.5, NumberOfReviews: 2,
		Images:    []rentora.Image{{ID: 1, URL: "/media/101-front.jpg", IsPrimary: true}},
		Amenities: []rentora.Amenity{{ID: 1, Name: "WiFi"}, {ID: 5, Name: "Elevator"}},
	})
	s.AddProperty(&rentora.Property{
		ID: 102, Title: "Riverside studio",
		Description: "Compact studio with a view of the Tagus.",
		Address:     "Rua do Arsenal 44, Lisbon",
		AnnualPrice: 12000, NightlyPrice: 60,
		Bedrooms: 1, Bathrooms: 1, Type: "STUDIO",
		Status: rentora.PropertyStatusLive, LandlordID: 2,
	})
	s.AddProperty(&rentora.Property{
		ID: 103, Title: "Garden house in Porto",
		Description: "Three bedrooms, small garden, needs review.",
		Address:     "Rua de Cedofeita 200, Porto",
		AnnualPrice: 24000,
		Bedrooms:    3, Bathrooms: 2, Type: "HOUSE",
		Status: rentora.PropertyStatusPending, LandlordID: 2,
	})

	s.SetFeatured([]int64{101, 102})

	s.AddBooking(3, &rentora.Booking{
		ID:          201,
		Property:    mustProperty(s, 101),
		BookingDate: "2026-10-01",
		Status:      "CONFIRMED",
	})

	s.AddApplication(&rentora.Application{
		ID: 301, UserID: 3, PropertyID: 102,
		Status: "PENDING", CreatedAt: "2026-08-20T10:00:00Z",
	})

	s.AddVerification(&rentora.Verification{
		ID: 401, User: &renter.User,
		DocumentURL: "/media/verifications/401.pdf",
		Status:      "PENDING", SubmittedAt: "2026-08-25T09:30:00Z",
	})

	s.AddReport(&rentora.Report{
		ID: 501, Reporter: &renter.User,
		TargetType: "PROPERTY", TargetID: 102,
		Reason: "Listing photos do not match the flat.",
		Status: "OPEN", CreatedAt: "2026-08-28T16:45:00Z",
	})

	s.SendMessage(&renter.User, 2, 101, "Hi, is the T2 still available from October?")
}

func mustProperty(s *Store, id int64) *rentora.Property {
	p, ok := s.Property(id)
	if !ok {
		return nil
	}
	c := *p
	return &c
}
