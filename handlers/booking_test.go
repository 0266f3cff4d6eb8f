package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casaherenia/models"
	"casaherenia/services/booking"
)

type fakeBookingService struct {
	cancelErr     error
	cancelOutcome *booking.CancelOutcome
}

func (f *fakeBookingService) Create(ctx context.Context, in booking.CreateBookingInput) (*booking.CreateBookingResult, error) {
	return nil, nil
}

func (f *fakeBookingService) Cancel(ctx context.Context, bookingID, email string) (*booking.CancelOutcome, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelOutcome, nil
}

func (f *fakeBookingService) GetForCancel(ctx context.Context, bookingID, email string) (*models.Booking, bool, error) {
	if f.cancelErr != nil {
		return nil, false, f.cancelErr
	}
	return &models.Booking{ID: bookingID}, true, nil
}

func (f *fakeBookingService) ConfirmFromCheckout(ctx context.Context, bookingID string) error {
	return nil
}

func postCancel(svc booking.BookingService) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BookingHandler{Service: svc}
	r.POST("/api/bookings/:id/cancel", handler.CancelBooking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b1/cancel",
		bytes.NewBufferString(`{"email":"guest@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCancelBookingEmailMismatchIsDistinctFromNotFound(t *testing.T) {
	w := postCancel(&fakeBookingService{cancelErr: booking.ErrEmailMismatch})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "email does not match this booking", body["message"])
}

func TestCancelBookingUnknownIDIs404(t *testing.T) {
	w := postCancel(&fakeBookingService{cancelErr: booking.ErrBookingNotFound})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelBookingAlreadyCancelledIs409(t *testing.T) {
	w := postCancel(&fakeBookingService{cancelErr: booking.ErrAlreadyCancelled})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelBookingReturnsOutcome(t *testing.T) {
	w := postCancel(&fakeBookingService{
		cancelOutcome: &booking.CancelOutcome{Status: models.BookingStatusCancelledRefund, RefundEligible: true},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var outcome booking.CancelOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.True(t, outcome.RefundEligible)
}
