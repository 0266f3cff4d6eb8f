package notification

import (
	"context"

	"casaherenia/models"
)

// NotificationService delivers the transactional messages of the booking
// lifecycle. Every method is best-effort: delivery failures are logged and
// never propagate into the state transition that triggered them.
type NotificationService interface {
	BookingConfirmed(ctx context.Context, booking models.Booking, cancelURL string)
	BookingCancelled(ctx context.Context, booking models.Booking, refund bool)
	TaxiRequested(ctx context.Context, req models.TaxiRequest)
	SurveyInvite(ctx context.Context, booking models.Booking, surveyURL string)
	ContactMessage(ctx context.Context, name, email, message string)
}
