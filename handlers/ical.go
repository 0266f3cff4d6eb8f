package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/services/availability"
	"casaherenia/utils"
)

// ICalHandler serves the outbound ICS feed consumed by channel managers.
type ICalHandler struct {
	Export availability.CalendarExportService
}

// GetCalendar streams the ICS calendar for one unit slug. Unlike the JSON
// availability endpoint this one fails loud: a channel manager reading an
// empty calendar would open every date for sale.
func (h *ICalHandler) GetCalendar(c *gin.Context) {
	slug := c.Param("room")

	body, err := h.Export.Export(c.Request.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrUnknownCalendarSlug):
			utils.JSONError(c, http.StatusBadRequest, "unknown calendar", err.Error())
		case errors.Is(err, availability.ErrCalendarUnavailable):
			utils.JSONError(c, http.StatusServiceUnavailable, "calendar temporarily unavailable", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "calendar export failed", "")
		}
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slug+".ics"))
	// Channel managers poll on their own schedule; a cached copy here
	// could hold a stale calendar past a new reservation.
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.String(http.StatusOK, body)
}
