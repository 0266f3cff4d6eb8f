package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/services/availability"
)

// publicCacheControl lets the CDN absorb the public availability traffic.
// The stale window keeps the widget usable while a refresh is in flight.
const publicCacheControl = "public, s-maxage=3600, stale-while-revalidate=7200"

// AvailabilityHandler serves the blocked-date picture behind the booking
// widget and the admin calendar.
type AvailabilityHandler struct {
	Service availability.Service
}

// GetBlockedDates returns the merged blocked days per unit. This endpoint
// never errors: a degraded source yields fewer blocked days, and the
// booking flow re-validates dates server-side anyway.
func (h *AvailabilityHandler) GetBlockedDates(c *gin.Context) {
	dates := h.Service.BlockedDates(c.Request.Context())
	c.Header("Cache-Control", publicCacheControl)
	c.JSON(http.StatusOK, dates)
}

// GetAdminBlockedDates returns occupancy and manual closures separately so
// the admin calendar can tell a reservation from an owner hold. Never
// cached: the owner needs to see a block right after creating it.
func (h *AvailabilityHandler) GetAdminBlockedDates(c *gin.Context) {
	dates := h.Service.AdminBlockedDates(c.Request.Context())
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dates)
}
