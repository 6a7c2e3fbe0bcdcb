package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	rentora "github.com/rentora/rentora-go"
)

// landlordDashboard handles GET /api/landlord/dashboard/metrics.
func (h *handlers) landlordDashboard(c *gin.Context) {
	account := currentAccount(c)
	properties := h.store.PropertiesByLandlord(account.User.ID)
	bookings := h.store.BookingsByLandlord(account.User.ID)

	active := 0
	for _, p := range properties {
		if p.Status == rentora.PropertyStatusLive {
			active++
		}
	}

	var revenue float64
	booked := make(map[int64]bool)
	for _, b := range bookings {
		if b.Status == "CONFIRMED" && b.Property != nil {
			revenue += b.Property.NightlyPrice
			booked[b.Property.ID] = true
		}
	}

	occupancy := 0.0
	if active > 0 {
		occupancy = float64(len(booked)) / float64(active)
	}

	c.JSON(http.StatusOK, rentora.LandlordDashboard{
		TotalRevenue:    revenue,
		OccupancyRate:   occupancy,
		TotalProperties: len(properties),
		ActiveListings:  active,
	})
}

// landlordProperties handles GET /api/landlord/properties.
func (h *handlers) landlordProperties(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, h.store.PropertiesByLandlord(account.User.ID))
}

// landlordProperty handles GET /api/landlord/properties/:id.
func (h *handlers) landlordProperty(c *gin.Context) {
	account := currentAccount(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, ok := h.store.Property(id)
	if !ok || p.LandlordID != account.User.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, p)
}

// landlordCreateProperty handles POST /api/landlord/properties.
func (h *handlers) landlordCreateProperty(c *gin.Context) {
	h.createProperty(c)
}

// landlordUpdateProperty handles PUT /api/landlord/properties/:id.
func (h *handlers) landlordUpdateProperty(c *gin.Context) {
	account := currentAccount(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input rentora.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid property payload"})
		return
	}

	existing, ok := h.store.Property(id)
	if !ok || existing.LandlordID != account.User.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}

	h.store.UpdateProperty(id, func(p *rentora.Property) {
		applyPropertyInput(h, p, input)
	})
	updated, _ := h.store.Property(id)
	c.JSON(http.StatusOK, updated)
}

// landlordUpdatePricing handles PUT /api/landlord/properties/:id/pricing.
func (h *handlers) landlordUpdatePricing(c *gin.Context) {
	account := currentAccount(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var pricing rentora.PricingUpdate
	if err := c.ShouldBindJSON(&pricing); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid pricing payload"})
		return
	}

	existing, ok := h.store.Property(id)
	if !ok || existing.LandlordID != account.User.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}

	h.store.UpdateProperty(id, func(p *rentora.Property) {
		if pricing.AnnualPrice > 0 {
			p.AnnualPrice = pricing.AnnualPrice
		}
		if pricing.NightlyPrice > 0 {
			p.NightlyPrice = pricing.NightlyPrice
		}
	})
	updated, _ := h.store.Property(id)
	c.JSON(http.StatusOK, updated)
}

// landlordUploadMedia handles POST /api/landlord/properties/:id/media. The
// payload is a multipart form with a single "file" field.
func (h *handlers) landlordUploadMedia(c *gin.Context) {
	account := currentAccount(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existing, ok := h.store.Property(id)
	if !ok || existing.LandlordID != account.User.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "multipart field \"file\" is required"})
		return
	}

	img := rentora.Image{
		ID:  h.store.NextID(),
		URL: fmt.Sprintf("/media/%d-%s", id, file.Filename),
	}
	h.store.UpdateProperty(id, func(p *rentora.Property) {
		img.IsPrimary = len(p.Images) == 0
		p.Images = append(p.Images, img)
	})

	c.JSON(http.StatusCreated, img)
}

// landlordAvailability handles GET /api/landlord/properties/:id/availability.
func (h *handlers) landlordAvailability(c *gin.Context) {
	account := currentAccount(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existing, ok := h.store.Property(id)
	if !ok || existing.LandlordID != account.User.ID {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, h.store.BookingsByProperty(id))
}

// landlordApplications handles GET /api/landlord/applications.
func (h *handlers) landlordApplications(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, h.store.ApplicationsByLandlord(account.User.ID))
}

// landlordRequests handles GET /api/landlord/requests.
func (h *handlers) landlordRequests(c *gin.Context) {
	account := currentAccount(c)
	all := h.store.BookingsByLandlord(account.User.ID)
	pending := make([]rentora.Booking, 0, len(all))
	for _, b := range all {
		if b.Status == "PENDING" {
			pending = append(pending, b)
		}
	}
	c.JSON(http.StatusOK, pending)
}
