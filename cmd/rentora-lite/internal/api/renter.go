package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	rentora "github.com/rentora/rentora-go"
)

// renterDashboard handles GET /api/renter/dashboard.
func (h *handlers) renterDashboard(c *gin.Context) {
	account := currentAccount(c)

	bookings := h.store.BookingsByRenter(account.User.ID)
	var spent float64
	upcoming := 0
	for _, b := range bookings {
		if b.Status == "CONFIRMED" {
			upcoming++
			if b.Property != nil {
				spent += b.Property.NightlyPrice
			}
		}
	}

	active := 0
	for _, a := range h.store.ApplicationsByRenter(account.User.ID) {
		if a.Status == "PENDING" {
			active++
		}
	}

	c.JSON(http.StatusOK, rentora.RenterDashboard{
		SavedPropertiesCount:    len(h.store.SavedProperties(account.User.ID)),
		ActiveApplicationsCount: active,
		UpcomingBookingsCount:   upcoming,
		TotalSpent:              spent,
	})
}

// savedProperties handles GET /api/renter/saved-properties.
func (h *handlers) savedProperties(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, h.store.SavedProperties(account.User.ID))
}

// saveProperty handles POST /api/renter/saved-properties/:id.
func (h *handlers) saveProperty(c *gin.Context) {
	account := currentAccount(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := h.store.Property(id); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}
	h.store.SaveProperty(account.User.ID, id)
	c.Status(http.StatusOK)
}

// createApplication handles POST /api/renter/applications.
func (h *handlers) createApplication(c *gin.Context) {
	account := currentAccount(c)

	var req rentora.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid application payload"})
		return
	}
	if _, ok := h.store.Property(req.PropertyID); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", req.PropertyID)})
		return
	}

	status := req.Status
	if status == "" {
		status = "PENDING"
	}
	app := &rentora.Application{
		ID:         h.store.NextID(),
		UserID:     account.User.ID,
		PropertyID: req.PropertyID,
		Status:     status,
		CreatedAt:  nowRFC3339(),
	}
	h.store.AddApplication(app)
	c.JSON(http.StatusCreated, app)
}

// createRenterBooking handles POST /api/renter/bookings. Same semantics
// as POST /api/bookings, kept on the renter surface for parity with the
// production routes.
func (h *handlers) createRenterBooking(c *gin.Context) {
	h.createBooking(c)
}

// createTour handles POST /api/renter/tours. Tours are acknowledged but
// not stored; the lite server has no calendar.
func (h *handlers) createTour(c *gin.Context) {
	var req rentora.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid tour payload"})
		return
	}
	if _, ok := h.store.Property(req.PropertyID); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", req.PropertyID)})
		return
	}
	c.Status(http.StatusCreated)
}

// createOffer handles POST /api/renter/negotiations/:id/offers.
func (h *handlers) createOffer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req rentora.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid offer payload"})
		return
	}
	if req.Offer <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "offer must be positive"})
		return
	}
	if _, ok := h.store.Application(id); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("application %d not found", id)})
		return
	}
	c.Status(http.StatusCreated)
}
