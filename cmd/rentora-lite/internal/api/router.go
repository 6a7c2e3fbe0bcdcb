// Package api is the HTTP surface of rentora-lite: a gin router serving
// the same contract the production backend does, over the in-memory store.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/rentora/rentora-go/cmd/rentora-lite/internal/store"
	"github.com/rentora/rentora-go/session"
)

const version = "1.0.0"

// Config carries the router dependencies.
type Config struct {
	Store     *store.Store
	JWTSecret []byte
	Logger    zerolog.Logger
}

// SetupRouter creates and configures the gin router with all API routes.
// Everything lives under /api, mirroring the production path layout.
func SetupRouter(cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(cfg.Logger))
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version})
	})

	h := &handlers{store: cfg.Store, secret: cfg.JWTSecret, logger: cfg.Logger}

	api := router.Group("/api")
	{
		api.POST("/auth/authenticate", h.authenticate)
		api.POST("/auth/register", h.register)
		api.POST("/auth/verify", h.verifyEmail)
		api.POST("/auth/resend-verification", h.resendVerification)

		api.GET("/properties", h.listProperties)
		api.GET("/properties/:id", h.getProperty)
		api.GET("/amenities", h.listAmenities)
		api.GET("/v1/users/:id", h.getUser)
		api.GET("/v1/users/email/:email", h.getUserByEmail)

		auth := api.Group("", h.requireAuth)
		{
			auth.POST("/properties", h.createProperty)
			auth.POST("/bookings", h.createBooking)
			auth.POST("/reviews", h.createReview)

			auth.GET("/my-properties", h.myProperties)
			auth.GET("/my-properties/:id", h.myProperty)
			auth.POST("/my-properties", h.createMyProperty)
			auth.PUT("/my-properties/:id", h.updateMyProperty)
			auth.DELETE("/my-properties/:id", h.deleteMyProperty)

			auth.GET("/conversations", h.listConversations)
			auth.GET("/conversations/:id/messages", h.conversationMessages)
			auth.GET("/messages", h.listMessages)
			auth.POST("/messages", h.sendMessage)

			auth.POST("/images/upload/property/:id", h.uploadPropertyImage)

			renter := auth.Group("/renter", h.requireRole(session.RoleRenter))
			{
				renter.GET("/dashboard", h.renterDashboard)
				renter.GET("/saved-properties", h.savedProperties)
				renter.POST("/saved-properties/:id", h.saveProperty)
				renter.POST("/applications", h.createApplication)
				renter.POST("/bookings", h.createRenterBooking)
				renter.POST("/tours", h.createTour)
				renter.POST("/negotiations/:id/offers", h.createOffer)
			}

			landlord := auth.Group("/landlord", h.requireRole(session.RoleLandlord))
			{
				landlord.GET("/dashboard/metrics", h.landlordDashboard)
				landlord.GET("/properties", h.landlordProperties)
				landlord.GET("/properties/:id", h.landlordProperty)
				landlord.POST("/properties", h.landlordCreateProperty)
				landlord.PUT("/properties/:id", h.landlordUpdateProperty)
				landlord.PUT("/properties/:id/pricing", h.landlordUpdatePricing)
				landlord.POST("/properties/:id/media", h.landlordUploadMedia)
				landlord.GET("/properties/:id/availability", h.landlordAvailability)
				landlord.GET("/applications", h.landlordApplications)
				landlord.GET("/requests", h.landlordRequests)
			}

			admin := auth.Group("/admin", h.requireRole(session.RoleAdmin))
			{
				admin.GET("/dashboard/metrics", h.adminDashboard)
				admin.GET("/users", h.adminUsers)
				admin.PUT("/users/:id/status", h.adminUserStatus)
				admin.GET("/properties", h.adminProperties)
				admin.POST("/properties/:id/status", h.adminPropertyStatus)
				admin.GET("/verifications", h.adminVerifications)
				admin.POST("/verifications/:id/action", h.adminVerificationAction)
				admin.GET("/reports", h.adminReports)
				admin.GET("/featured-properties", h.adminFeatured)
				admin.PUT("/featured-properties", h.adminUpdateFeatured)
			}
		}
	}

	return router
}

// handlers bundles the store and token secret shared by every endpoint.
type handlers struct {
	store  *store.Store
	secret []byte
	logger zerolog.Logger
}

const ctxAccount = "account"

// requireAuth validates the Bearer token and loads the account into the
// request context.
func (h *handlers) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
		return
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return h.secret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token claims"})
		return
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token subject"})
		return
	}

	account, ok := h.store.Account(int64(sub))
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "unknown account"})
		return
	}
	if account.User.Status == session.UserStatusSuspended {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "account suspended"})
		return
	}

	c.Set(ctxAccount, account)
	c.Next()
}

// requireRole gates a route group on the authenticated role. Admins pass
// every gate.
func (h *handlers) requireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := currentAccount(c)
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated"})
			return
		}
		if account.User.Role != role && account.User.Role != session.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient role"})
			return
		}
		c.Next()
	}
}

func currentAccount(c *gin.Context) *store.Account {
	v, ok := c.Get(ctxAccount)
	if !ok {
		return nil
	}
	account, _ := v.(*store.Account)
	return account
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}

// corsMiddleware adds CORS headers for development.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
