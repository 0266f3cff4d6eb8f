package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/services/booking"
	"casaherenia/utils"
)

// BookingHandler exposes reservation creation and guest self-service
// cancellation.
type BookingHandler struct {
	Service booking.BookingService
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidUnit),
			errors.Is(err, booking.ErrInvalidDateRange),
			errors.Is(err, booking.ErrInvalidGuests),
			errors.Is(err, booking.ErrMissingContact):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		case errors.Is(err, booking.ErrDatesUnavailable):
			utils.JSONError(c, http.StatusConflict, "dates not available", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "could not create booking", "")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

type cancelRequest struct {
	Email string `json:"email" binding:"required"`
}

// GetCancelInfo handles GET /api/bookings/:id/cancel-info. The email query
// parameter guards the lookup; the response previews refund eligibility so
// the guest sees the outcome before committing.
func (h *BookingHandler) GetCancelInfo(c *gin.Context) {
	id := c.Param("id")
	email := c.Query("email")

	b, refund, err := h.Service.GetForCancel(c.Request.Context(), id, email)
	if err != nil {
		h.writeCancelError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":         b,
		"refund_eligible": refund,
	})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email is required", err.Error())
		return
	}

	outcome, err := h.Service.Cancel(c.Request.Context(), id, req.Email)
	if err != nil {
		h.writeCancelError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *BookingHandler) writeCancelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, booking.ErrEmailMismatch):
		utils.JSONError(c, http.StatusForbidden, "email does not match this booking", "")
	case errors.Is(err, booking.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusConflict, "booking already cancelled", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "cancellation failed", "")
	}
}
