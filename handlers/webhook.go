package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"casaherenia/services/booking"
	"casaherenia/utils"
)

// StripeWebhookHandler receives payment events. Signature verification
// happens before anything else touches the payload; an unsigned request
// never reaches the store.
type StripeWebhookHandler struct {
	Service        booking.BookingService
	EndpointSecret string
	Logger         *zap.Logger
}

// HandleWebhook handles POST /api/webhooks/stripe.
func (h *StripeWebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read webhook body", "")
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.EndpointSecret)
	if err != nil {
		h.Logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid signature", "")
		return
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.Logger.Error("could not parse checkout session payload", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "malformed event payload", "")
			return
		}
		bookingID := session.Metadata["bookingId"]
		if bookingID == "" {
			h.Logger.Warn("checkout session without booking metadata",
				zap.String("session", session.ID))
			break
		}
		if err := h.Service.ConfirmFromCheckout(c.Request.Context(), bookingID); err != nil {
			h.Logger.Error("could not confirm booking from checkout",
				zap.String("booking", bookingID), zap.Error(err))
			// Non-200 makes Stripe retry the delivery later.
			utils.JSONError(c, http.StatusInternalServerError, "confirmation failed", "")
			return
		}
	default:
		h.Logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
	}

	c.Status(http.StatusOK)
}
