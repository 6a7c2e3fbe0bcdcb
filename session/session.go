// Package session owns the authenticated identity persisted between runs:
// the access token, the optional refresh token, the normalized role and the
// cached user profile. Everything else reads sessions through a Store;
// nothing mutates session fields directly.
package session

import "strings"

// Role is the canonical role of an authenticated user.
type Role string

const (
	RoleRenter   Role = "RENTER"
	RoleLandlord Role = "LANDLORD"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole normalizes a backend-provided role value into the canonical
// enum. The backend emits both bare values ("RENTER") and Spring-style
// prefixed ones ("ROLE_RENTER"); normalization happens here, exactly once,
// at the point the session is created.
func ParseRole(s string) (Role, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "ROLE_")
	switch Role(v) {
	case RoleRenter, RoleLandlord, RoleAdmin:
		return Role(v), true
	}
	return "", false
}

// UserStatus is the account status of a user.
type UserStatus string

const (
	UserStatusPendingVerification UserStatus = "PENDING_VERIFICATION"
	UserStatusActive              UserStatus = "ACTIVE"
	UserStatusSuspended           UserStatus = "SUSPENDED"
	UserStatusVerified            UserStatus = "VERIFIED"
)

// User is the profile snapshot cached alongside the session. It is
// immutable between logins; a fresh value is written only by re-login.
type User struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        Role       `json:"role"`
	Status      UserStatus `json:"status"`
}

// Session is the persisted authentication state. The JSON field names match
// the storage entries the web client keeps ("token", "refreshToken",
// "role", "user").
type Session struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Role         Role   `json:"role"`
	User         *User  `json:"user,omitempty"`
}

// Store is the single owner of the persisted session. Write is atomic with
// respect to all session fields: readers never observe a token without its
// role. Subscribe registers a callback invoked after every state change,
// including changes made by other processes sharing the same backing
// storage; the returned cancel func unregisters it.
type Store interface {
	Read() *Session
	Write(s Session) error
	Clear() error
	Subscribe(fn func(*Session)) (cancel func())
}

func cloneSession(s *Session) *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return &out
}
