package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rentora/rentora-go/cmd/rentora-lite/internal/store"
	"github.com/rentora/rentora-go/session"
)

const tokenTTL = 24 * time.Hour

// authResponse is the successful login payload. The role keeps the
// backend's ROLE_ prefix on purpose; clients normalize it on their side.
type authResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken,omitempty"`
	User         *session.User `json:"user,omitempty"`
}

// authenticate handles POST /api/auth/authenticate.
func (h *handlers) authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "email and password are required"})
		return
	}

	account, ok := h.store.AccountByEmail(req.Email)
	if !ok || account.Password != req.Password {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid credentials"})
		return
	}
	if account.User.Status == session.UserStatusSuspended {
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "account suspended"})
		return
	}
	if !account.Verified {
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "email not verified"})
		return
	}

	access, err := h.mintToken(account, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to issue token"})
		return
	}
	refresh, err := h.mintToken(account, 7*24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to issue token"})
		return
	}

	user := account.User
	user.Role = session.Role("ROLE_" + string(account.User.Role))
	c.JSON(http.StatusOK, authResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &user,
	})
}

// register handles POST /api/auth/register. The account starts in
// PENDING_VERIFICATION; /auth/verify flips it.
func (h *handlers) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid registration payload"})
		return
	}

	role, ok := session.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "unknown role"})
		return
	}

	account := &store.Account{
		User: session.User{
			ID:          h.store.NextID(),
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Role:        role,
			Status:      session.UserStatusPendingVerification,
		},
		Password: req.Password,
	}
	if err := h.store.AddAccount(account); err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	h.logger.Info().Str("email", req.Email).Msg("account registered")
	c.JSON(http.StatusCreated, account.User)
}

// verifyEmail handles POST /api/auth/verify. Any code works in the lite
// server; production checks the emailed one.
func (h *handlers) verifyEmail(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "email and code are required"})
		return
	}

	account, ok := h.store.AccountByEmail(req.Email)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "account not found"})
		return
	}
	h.store.VerifyAccount(account.User.ID)
	c.Status(http.StatusOK)
}

// resendVerification handles POST /api/auth/resend-verification. The lite
// server has no mailer, so this only checks the account exists.
func (h *handlers) resendVerification(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "email is required"})
		return
	}
	if _, ok := h.store.AccountByEmail(req.Email); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "account not found"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *handlers) mintToken(account *store.Account, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.User.ID,
		"email": account.User.Email,
		"role":  string(account.User.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}
