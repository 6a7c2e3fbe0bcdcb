package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Gate answers the two questions navigation and screen guards ask: is
// anyone logged in, and do they hold a given role. It is a pure read over
// the store snapshot and controls presentation only; the backend remains
// the enforcement point for every privileged operation.
type Gate struct {
	store Store
}

// NewGate creates a gate over the given store.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// IsAuthenticated reports whether a session with a usable access token is
// present. Tokens carrying a decodable JWT expiry that has already passed
// count as absent, so guards flip before the backend ever sees the stale
// token; opaque tokens are assumed valid and left for the backend to judge.
func (g *Gate) IsAuthenticated() bool {
	s := g.store.Read()
	if s == nil || s.AccessToken == "" {
		return false
	}
	return !tokenExpired(s.AccessToken, time.Now())
}

// HasRole reports whether the current session holds the given role.
func (g *Gate) HasRole(role Role) bool {
	s := g.store.Read()
	return s != nil && s.Role == role
}

// Subscribe invokes fn after every session change so guards can
// re-evaluate without polling. The returned cancel func unregisters it.
func (g *Gate) Subscribe(fn func()) func() {
	return g.store.Subscribe(func(*Session) { fn() })
}

// tokenExpired decodes the exp claim without verifying the signature.
// Verification is the backend's job; the client only uses the claim to
// avoid presenting a token it already knows is dead.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
