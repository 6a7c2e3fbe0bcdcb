// Package store is the in-memory backing state for rentora-lite. It holds
// everything a development backend needs: users, listings, bookings,
// applications, verifications, reports, conversations and reviews, seeded
// with deterministic fixtures so the client and CLI have something to talk
// to out of the box.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/session"
)

// Account is a user record together with its login password. The password
// never leaves the store; handlers expose only the embedded User.
type Account struct {
	User     session.User
	Password string
	Verified bool
}

// Store is the in-memory state of rentora-lite. Thread-safe for concurrent
// access.
type Store struct {
	mu sync.RWMutex

	accounts      map[int64]*Account
	properties    map[int64]*rentora.Property
	bookings      map[int64]*rentora.Booking
	bookingOwner  map[int64]int64 // booking ID -> renter ID
	applications  map[int64]*rentora.Application
	verifications map[int64]*rentora.Verification
	reports       map[int64]*rentora.Report
	conversations map[int64]*rentora.Conversation
	messages      map[int64][]rentora.Message // conversation ID -> messages
	reviews       map[int64]*rentora.Review
	amenities     []rentora.Amenity
	saved         map[int64]map[int64]bool // renter ID -> property IDs
	featured      []int64

	nextID int64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		accounts:      make(map[int64]*Account),
		properties:    make(map[int64]*rentora.Property),
		bookings:      make(map[int64]*rentora.Booking),
		bookingOwner:  make(map[int64]int64),
		applications:  make(map[int64]*rentora.Application),
		verifications: make(map[int64]*rentora.Verification),
		reports:       make(map[int64]*rentora.Report),
		conversations: make(map[int64]*rentora.Conversation),
		messages:      make(map[int64][]rentora.Message),
		reviews:       make(map[int64]*rentora.Review),
		saved:         make(map[int64]map[int64]bool),
		nextID:        1000,
	}
}

// NextID allocates a fresh identifier.
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

// --- accounts ---

// AddAccount registers an account. Emails are unique.
func (s *Store) AddAccount(a *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if strings.EqualFold(existing.User.Email, a.User.Email) {
			return fmt.Errorf("account with email %s already exists", a.User.Email)
		}
	}
	s.accounts[a.User.ID] = a
	return nil
}

// Account retrieves an account by ID.
func (s *Store) Account(id int64) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

// AccountByEmail retrieves an account by email, case-insensitively.
func (s *Store) AccountByEmail(email string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.User.Email, email) {
			return a, true
		}
	}
	return nil, false
}

// Accounts returns all accounts ordered by ID.
func (s *Store) Accounts() []*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].User.ID < out[j].User.ID })
	return out
}

// VerifyAccount marks an account's email verified and activates it if it
// was still pending.
func (s *Store) VerifyAccount(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	a.Verified = true
	if a.User.Status == session.UserStatusPendingVerification {
		a.User.Status = session.UserStatusActive
	}
	return nil
}

// SetUserStatus changes an account's status.
func (s *Store) SetUserStatus(id int64, status session.UserStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	a.User.Status = status
	return nil
}

// --- properties ---

// AddProperty stores a listing.
func (s *Store) AddProperty(p *rentora.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID] = p
}

// Property retrieves a listing by ID.
func (s *Store) Property(id int64) (*rentora.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	return p, ok
}

// Properties returns all listings ordered by ID, optionally filtered by
// status. An empty status means all.
func (s *Store) Properties(status rentora.PropertyStatus) []rentora.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PropertiesByLandlord returns one landlord's listings ordered by ID.
func (s *Store) PropertiesByLandlord(landlordID int64) []rentora.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Property, 0)
	for _, p := range s.properties {
		if p.LandlordID == landlordID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateProperty applies fn to the listing under the store lock.
func (s *Store) UpdateProperty(id int64, fn func(*rentora.Property)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return fmt.Errorf("property %d not found", id)
	}
	fn(p)
	return nil
}

// DeleteProperty marks a listing deleted. The record stays for admin views.
func (s *Store) DeleteProperty(id int64) error {
	return s.UpdateProperty(id, func(p *rentora.Property) {
		p.Status = rentora.PropertyStatusDeleted
	})
}

// --- featured ---

// Featured returns the curated listing IDs.
func (s *Store) Featured() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int64, len(s.featured))
	copy(out, s.featured)
	return out
}

// SetFeatured replaces the curated list.
func (s *Store) SetFeatured(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.featured = make([]int64, len(ids))
	copy(s.featured, ids)
}

// --- bookings ---

// AddBooking stores a booking for a renter.
func (s *Store) AddBooking(renterID int64, b *rentora.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
	s.bookingOwner[b.ID] = renterID
}

// BookingsByProperty returns the bookings against one listing.
func (s *Store) BookingsByProperty(propertyID int64) []rentora.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Booking, 0)
	for _, b := range s.bookings {
		if b.Property != nil && b.Property.ID == propertyID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BookingsByLandlord returns bookings against any of a landlord's listings.
func (s *Store) BookingsByLandlord(landlordID int64) []rentora.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Booking, 0)
	for _, b := range s.bookings {
		if b.Property != nil && b.Property.LandlordID == landlordID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BookingsByRenter returns one renter's bookings.
func (s *Store) BookingsByRenter(renterID int64) []rentora.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Booking, 0)
	for id, b := range s.bookings {
		if s.bookingOwner[id] == renterID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- applications ---

// AddApplication stores a rental application.
func (s *Store) AddApplication(a *rentora.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = a
}

// Application retrieves an application by ID.
func (s *Store) Application(id int64) (*rentora.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[id]
	return a, ok
}

// ApplicationsByLandlord returns applications filed against a landlord's
// listings.
func (s *Store) ApplicationsByLandlord(landlordID int64) []rentora.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Application, 0)
	for _, a := range s.applications {
		p, ok := s.properties[a.PropertyID]
		if ok && p.LandlordID == landlordID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ApplicationsByRenter returns one renter's applications.
func (s *Store) ApplicationsByRenter(renterID int64) []rentora.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Application, 0)
	for _, a := range s.applications {
		if a.UserID == renterID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- saved properties ---

// SaveProperty adds a listing to a renter's favorites. Saving twice is a
// no-op.
func (s *Store) SaveProperty(renterID, propertyID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved[renterID] == nil {
		s.saved[renterID] = make(map[int64]bool)
	}
	s.saved[renterID][propertyID] = true
}

// SavedProperties returns a renter's favorites ordered by ID.
func (s *Store) SavedProperties(renterID int64) []rentora.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Property, 0)
	for id := range s.saved[renterID] {
		if p, ok := s.properties[id]; ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- verifications ---

// AddVerification queues an identity verification.
func (s *Store) AddVerification(v *rentora.Verification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifications[v.ID] = v
}

// PendingVerifications returns the queue ordered by ID.
func (s *Store) PendingVerifications() []rentora.Verification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Verification, 0)
	for _, v := range s.verifications {
		if v.Status == "PENDING" {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ResolveVerification settles a pending verification. Approval also marks
// the user VERIFIED.
func (s *Store) ResolveVerification(id int64, action rentora.VerificationAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.verifications[id]
	if !ok {
		return fmt.Errorf("verification %d not found", id)
	}
	if v.Status != "PENDING" {
		return fmt.Errorf("verification %d already resolved", id)
	}
	switch action {
	case rentora.VerificationApprove:
		v.Status = "APPROVED"
		if v.User != nil {
			if a, ok := s.accounts[v.User.ID]; ok {
				a.User.Status = session.UserStatusVerified
			}
		}
	case rentora.VerificationReject:
		v.Status = "REJECTED"
	default:
		return fmt.Errorf("unknown verification action %q", action)
	}
	return nil
}

// --- reports ---

// AddReport files a report.
func (s *Store) AddReport(r *rentora.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = r
}

// Reports returns all reports ordered by ID.
func (s *Store) Reports() []rentora.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- messaging ---

// Conversations returns the conversations a user takes part in.
func (s *Store) Conversations(userID int64) []rentora.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Conversation, 0)
	for _, c := range s.conversations {
		if (c.User1 != nil && c.User1.ID == userID) || (c.User2 != nil && c.User2.ID == userID) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Messages returns one conversation's messages in order.
func (s *Store) Messages(conversationID int64) []rentora.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[conversationID]
	out := make([]rentora.Message, len(msgs))
	copy(out, msgs)
	return out
}

// MessagesByUser returns every message in conversations the user takes
// part in.
func (s *Store) MessagesByUser(userID int64) []rentora.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Message, 0)
	for id, c := range s.conversations {
		if (c.User1 != nil && c.User1.ID == userID) || (c.User2 != nil && c.User2.ID == userID) {
			out = append(out, s.messages[id]...)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SendMessage appends a message to the conversation between sender and
// recipient, creating the conversation when none exists yet.
func (s *Store) SendMessage(sender *session.User, recipientID, propertyID int64, content string) (*rentora.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipient, ok := s.accounts[recipientID]
	if !ok {
		return nil, fmt.Errorf("recipient %d not found", recipientID)
	}

	var conv *rentora.Conversation
	for _, c := range s.conversations {
		if c.User1 == nil || c.User2 == nil {
			continue
		}
		if (c.User1.ID == sender.ID && c.User2.ID == recipientID) ||
			(c.User1.ID == recipientID && c.User2.ID == sender.ID) {
			conv = c
			break
		}
	}
	if conv == nil {
		s.nextID++
		u1 := *sender
		u2 := recipient.User
		conv = &rentora.Conversation{ID: s.nextID, User1: &u1, User2: &u2}
		if propertyID != 0 {
			if p, ok := s.properties[propertyID]; ok {
				pc := *p
				conv.Property = &pc
			}
		}
		s.conversations[conv.ID] = conv
	}

	s.nextID++
	sc := *sender
	msg := rentora.Message{
		ID:        s.nextID,
		Sender:    &sc,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	s.messages[conv.ID] = append(s.messages[conv.ID], msg)
	return &msg, nil
}

// --- reviews ---

// AddReview stores a review and folds it into the listing's running
// average.
func (s *Store) AddReview(r *rentora.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[r.PropertyID]
	if !ok {
		return fmt.Errorf("property %d not found", r.PropertyID)
	}
	s.reviews[r.ID] = r

	total := p.AverageRating*float64(p.NumberOfReviews) + float64(r.Rating)
	p.NumberOfReviews++
	p.AverageRating = total / float64(p.NumberOfReviews)
	return nil
}

// --- amenities ---

// Amenities returns the amenity catalogue.
func (s *Store) Amenities() []rentora.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Amenity, len(s.amenities))
	copy(out, s.amenities)
	return out
}

// AmenitiesByID resolves amenity IDs against the catalogue, skipping
// unknown ones.
func (s *Store) AmenitiesByID(ids []int64) []rentora.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rentora.Amenity, 0, len(ids))
	for _, id := range ids {
		for _, a := range s.amenities {
			if a.ID == id {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
