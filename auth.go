package rentora

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rentora/rentora-go/session"
)

// AuthService handles login, registration and email verification, and owns
// the only code path that writes a session into the store.
type AuthService struct {
	client   *Client
	validate *validator.Validate
}

func newAuthService(c *Client) *AuthService {
	return &AuthService{
		client:   c,
		validate: validator.New(),
	}
}

// LoginRequest are the credentials for Login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for Register. Role accepts both the bare
// and the ROLE_-prefixed spelling; the backend stores the prefixed form.
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=ROLE_RENTER ROLE_LANDLORD ROLE_ADMIN RENTER LANDLORD ADMIN"`
}

// AuthResponse is the successful login payload.
type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken,omitempty"`
	User         *session.User `json:"user,omitempty"`
}

// Login authenticates with email and password and persists the resulting
// session. The role is normalized once here, at the session boundary, so
// every later read sees the canonical value. The session write is atomic:
// token, refresh token, role and user land together.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	var resp AuthResponse
	if err := s.client.post(ctx, "/auth/authenticate", req, &resp); err != nil {
		return nil, err
	}

	sess := session.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}
	if resp.User != nil {
		role, ok := session.ParseRole(string(resp.User.Role))
		if !ok {
			return nil, fmt.Errorf("login returned unknown role %q", resp.User.Role)
		}
		sess.Role = role
		resp.User.Role = role
	}
	if err := s.client.store.Write(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &resp, nil
}

// Register creates a new account. The account stays in
// PENDING_VERIFICATION until VerifyEmail confirms it; no session is
// created here.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*session.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid register request: %w", err)
	}

	var user session.User
	if err := s.client.post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	if role, ok := session.ParseRole(string(user.Role)); ok {
		user.Role = role
	}
	return &user, nil
}

// VerifyEmail confirms a registration with the emailed code.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return s.client.post(ctx, "/auth/verify", body, nil)
}

// ResendVerification requests a fresh verification email.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.post(ctx, "/auth/resend-verification", body, nil)
}

// Logout destroys the persisted session. Navigation back to the login
// entry point is the host's concern; subscribers of the session store see
// the clear immediately.
func (s *AuthService) Logout() error {
	return s.client.store.Clear()
}
