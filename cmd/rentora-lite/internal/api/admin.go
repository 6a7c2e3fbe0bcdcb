package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/session"
)

// readTextBody returns the request body as a trimmed string. The status
// and verification endpoints take the bare enum value as text/plain, not
// a JSON object; this mirrors the production contract exactly.
func readTextBody(c *gin.Context) (string, bool) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "request body is required"})
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// adminDashboard handles GET /api/admin/dashboard/metrics.
func (h *handlers) adminDashboard(c *gin.Context) {
	accounts := h.store.Accounts()
	properties := h.store.Properties("")

	openReports := 0
	for _, r := range h.store.Reports() {
		if r.Status == "OPEN" {
			openReports++
		}
	}

	c.JSON(http.StatusOK, rentora.AdminDashboard{
		TotalUsers:           len(accounts),
		TotalProperties:      len(properties),
		PendingVerifications: len(h.store.PendingVerifications()),
		OpenReports:          openReports,
	})
}

// adminUsers handles GET /api/admin/users with paging.
func (h *handlers) adminUsers(c *gin.Context) {
	accounts := h.store.Accounts()
	users := make([]session.User, len(accounts))
	for i, a := range accounts {
		users[i] = a.User
	}

	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", 20)
	c.JSON(http.StatusOK, pageOf(users, page, size))
}

// adminUserStatus handles PUT /api/admin/users/:id/status. The body is
// the bare status value as text/plain.
func (h *handlers) adminUserStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body, ok := readTextBody(c)
	if !ok {
		return
	}

	status := session.UserStatus(body)
	switch status {
	case session.UserStatusActive, session.UserStatusSuspended, session.UserStatusVerified, session.UserStatusPendingVerification:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unknown user status %q", body)})
		return
	}

	if err := h.store.SetUserStatus(id, status); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// adminProperties handles GET /api/admin/properties with an optional
// status filter.
func (h *handlers) adminProperties(c *gin.Context) {
	status := rentora.PropertyStatus(c.Query("status"))
	c.JSON(http.StatusOK, h.store.Properties(status))
}

// adminPropertyStatus handles POST /api/admin/properties/:id/status. The
// body is the bare status value as text/plain.
func (h *handlers) adminPropertyStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body, ok := readTextBody(c)
	if !ok {
		return
	}

	status := rentora.PropertyStatus(body)
	switch status {
	case rentora.PropertyStatusPending, rentora.PropertyStatusLive, rentora.PropertyStatusRejected, rentora.PropertyStatusDeleted:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unknown property status %q", body)})
		return
	}

	if err := h.store.UpdateProperty(id, func(p *rentora.Property) { p.Status = status }); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// adminVerifications handles GET /api/admin/verifications.
func (h *handlers) adminVerifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.PendingVerifications())
}

// adminVerificationAction handles POST /api/admin/verifications/:id/action.
// The body is APPROVE or REJECT as text/plain.
func (h *handlers) adminVerificationAction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body, ok := readTextBody(c)
	if !ok {
		return
	}

	action := rentora.VerificationAction(body)
	if action != rentora.VerificationApprove && action != rentora.VerificationReject {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unknown verification action %q", body)})
		return
	}

	if err := h.store.ResolveVerification(id, action); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// adminReports handles GET /api/admin/reports.
func (h *handlers) adminReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Reports())
}

// adminFeatured handles GET /api/admin/featured-properties.
func (h *handlers) adminFeatured(c *gin.Context) {
	out := make([]rentora.Property, 0)
	for _, id := range h.store.Featured() {
		if p, ok := h.store.Property(id); ok {
			out = append(out, *p)
		}
	}
	c.JSON(http.StatusOK, out)
}

// adminUpdateFeatured handles PUT /api/admin/featured-properties. The body
// is a JSON array of property IDs.
func (h *handlers) adminUpdateFeatured(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "expected a JSON array of property IDs"})
		return
	}
	for _, id := range ids {
		if _, ok := h.store.Property(id); !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("property %d not found", id)})
			return
		}
	}
	h.store.SetFeatured(ids)
	c.Status(http.StatusOK)
}
