package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	rentora "github.com/rentora/rentora-go"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryFloat(c *gin.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.Query(name), 64)
	return v
}

// listProperties handles GET /api/properties with filtering and paging.
// Only LIVE listings are visible on the public catalogue.
func (h *handlers) listProperties(c *gin.Context) {
	address := c.Query("address")
	minPrice := queryFloat(c, "minPrice")
	maxPrice := queryFloat(c, "maxPrice")
	minBedrooms := queryInt(c, "minBedrooms", 0)
	maxBedrooms := queryInt(c, "maxBedrooms", 0)
	minBathrooms := queryInt(c, "minBathrooms", 0)
	maxBathrooms := queryInt(c, "maxBathrooms", 0)

	all := h.store.Properties(rentora.PropertyStatusLive)
	filtered := make([]rentora.Property, 0, len(all))
	for _, p := range all {
		if address != "" && !containsFold(p.Address, address) {
			continue
		}
		if minPrice > 0 && p.AnnualPrice < minPrice {
			continue
		}
		if maxPrice > 0 && p.AnnualPrice > maxPrice {
			continue
		}
		if minBedrooms > 0 && p.Bedrooms < minBedrooms {
			continue
		}
		if maxBedrooms > 0 && p.Bedrooms > maxBedrooms {
			continue
		}
		if minBathrooms > 0 && p.Bathrooms < minBathrooms {
			continue
		}
		if maxBathrooms > 0 && p.Bathrooms > maxBathrooms {
			continue
		}
		filtered = append(filtered, p)
	}

	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", 10)
	c.JSON(http.StatusOK, pageOf(filtered, page, size))
}

// getProperty handles GET /api/properties/:id.
func (h *handlers) getProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, ok := h.store.Property(id)
	if !ok || p.Status == rentora.PropertyStatusDeleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, p)
}

// createProperty handles POST /api/properties. The listing is attributed
// to the caller and enters moderation as PENDING.
func (h *handlers) createProperty(c *gin.Context) {
	account := currentAccount(c)

	var input rentora.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid property payload"})
		return
	}

	p := propertyFromInput(h, input)
	p.ID = h.store.NextID()
	p.Status = rentora.PropertyStatusPending
	p.LandlordID = account.User.ID
	h.store.AddProperty(p)

	c.JSON(http.StatusCreated, p)
}

// listAmenities handles GET /api/amenities.
func (h *handlers) listAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Amenities())
}

// getUser handles GET /api/v1/users/:id.
func (h *handlers) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	account, ok := h.store.Account(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, account.User)
}

// getUserByEmail handles GET /api/v1/users/email/:email.
func (h *handlers) getUserByEmail(c *gin.Context) {
	account, ok := h.store.AccountByEmail(c.Param("email"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "user not found"})
		return
	}
	c.JSON(http.StatusOK, account.User)
}

// createBooking handles POST /api/bookings.
func (h *handlers) createBooking(c *gin.Context) {
	account := currentAccount(c)

	var req rentora.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid booking payload"})
		return
	}

	p, ok := h.store.Property(req.PropertyID)
	if !ok || p.Status != rentora.PropertyStatusLive {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", req.PropertyID)})
		return
	}

	status := req.Status
	if status == "" {
		status = "PENDING"
	}
	pc := *p
	booking := &rentora.Booking{
		ID:          h.store.NextID(),
		Property:    &pc,
		BookingDate: req.BookingDate,
		Status:      status,
	}
	h.store.AddBooking(account.User.ID, booking)

	c.JSON(http.StatusCreated, booking)
}

// createReview handles POST /api/reviews.
func (h *handlers) createReview(c *gin.Context) {
	account := currentAccount(c)

	var req rentora.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid review payload"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "rating must be between 1 and 5"})
		return
	}

	review := &rentora.Review{
		ID:         h.store.NextID(),
		PropertyID: req.PropertyID,
		TenantID:   account.User.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  nowRFC3339(),
	}
	if err := h.store.AddReview(review); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// --- my-properties: owner-scoped listing management ---

// myProperties handles GET /api/my-properties.
func (h *handlers) myProperties(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, h.store.PropertiesByLandlord(account.User.ID))
}

// myProperty handles GET /api/my-properties/:id.
func (h *handlers) myProperty(c *gin.Context) {
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

// createMyProperty handles POST /api/my-properties.
func (h *handlers) createMyProperty(c *gin.Context) {
	h.createProperty(c)
}

// updateMyProperty handles PUT /api/my-properties/:id.
func (h *handlers) updateMyProperty(c *gin.Context) {
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

// deleteMyProperty handles DELETE /api/my-properties/:id.
func (h *handlers) deleteMyProperty(c *gin.Context) {
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
	h.store.DeleteProperty(id)
	c.Status(http.StatusNoContent)
}

// --- messaging ---

// listConversations handles GET /api/conversations.
func (h *handlers) listConversations(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, h.store.Conversations(account.User.ID))
}

// conversationMessages handles GET /api/conversations/:id/messages.
func (h *handlers) conversationMessages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.Messages(id))
}

// listMessages handles GET /api/messages.
func (h *handlers) listMessages(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, h.store.MessagesByUser(account.User.ID))
}

// sendMessage handles POST /api/messages.
func (h *handlers) sendMessage(c *gin.Context) {
	account := currentAccount(c)

	var req rentora.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid message payload"})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "message content is required"})
		return
	}

	msg, err := h.store.SendMessage(&account.User, req.RecipientID, req.PropertyID, req.Content)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// --- images ---

// uploadPropertyImage handles POST /api/images/upload/property/:id. The
// payload is a multipart form with a single "file" field.
func (h *handlers) uploadPropertyImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := h.store.Property(id); !ok {
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

func propertyFromInput(h *handlers, input rentora.PropertyInput) *rentora.Property {
	p := &rentora.Property{}
	applyPropertyInput(h, p, input)
	return p
}

// applyPropertyInput copies set fields only, so partial updates stay
// partial.
func applyPropertyInput(h *handlers, p *rentora.Property, input rentora.PropertyInput) {
	if input.Title != "" {
		p.Title = input.Title
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Address != "" {
		p.Address = input.Address
	}
	if input.AnnualPrice > 0 {
		p.AnnualPrice = input.AnnualPrice
	}
	if input.NightlyPrice > 0 {
		p.NightlyPrice = input.NightlyPrice
	}
	if input.Bedrooms > 0 {
		p.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms > 0 {
		p.Bathrooms = input.Bathrooms
	}
	if input.Type != "" {
		p.Type = input.Type
	}
	if input.Coordinates != "" {
		p.Coordinates = input.Coordinates
	}
	if len(input.AmenityIDs) > 0 {
		p.Amenities = h.store.AmenitiesByID(input.AmenityIDs)
	}
}
