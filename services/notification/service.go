package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"casaherenia/models"
)

// DefaultNotificationService delivers email to guest and operator, plus an
// optional FCM push to the operator's device.
type DefaultNotificationService struct {
	Email         *EmailSender
	FCM           *messaging.Client // nil when push is not configured
	OwnerFCMToken string
	Logger        *zap.Logger
}

// BookingConfirmed notifies both parties of a confirmed reservation.
func (s *DefaultNotificationService) BookingConfirmed(ctx context.Context, b models.Booking, cancelURL string) {
	ownerLines := append([]string{
		"Booking confirmation",
		"",
		"The following booking has been confirmed:",
		"",
	}, bookingSummaryLines(b)...)
	ownerLines = append(ownerLines,
		"",
		"Contact:",
		fmt.Sprintf("Name: %s", b.GuestName),
		fmt.Sprintf("Email: %s", b.GuestEmail),
	)
	if b.GuestPhone != "" {
		ownerLines = append(ownerLines, fmt.Sprintf("Phone: %s", b.GuestPhone))
	}
	s.Email.sendOwner("Booking confirmation", ownerLines)

	guestLines := append([]string{
		fmt.Sprintf("Hello %s,", b.GuestName),
		"",
		"Your booking at Casa Herenia y Pedro has been confirmed.",
		"",
	}, bookingSummaryLines(b)...)
	if cancelURL != "" {
		guestLines = append(guestLines, "", fmt.Sprintf("To cancel or modify: %s", cancelURL))
	}
	s.Email.send(b.GuestEmail, "Your booking confirmation - Casa Herenia y Pedro", guestLines)

	s.push(ctx, "New booking",
		fmt.Sprintf("%s, %s to %s", b.RoomID.Label(), b.CheckIn, b.CheckOut))
}

// BookingCancelled notifies both parties with the refund outcome stated
// explicitly; the two outcomes are deliberately worded differently.
func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, b models.Booking, refund bool) {
	ownerRefundNote := "No refund; cancellation within 5 days of check-in."
	if refund {
		ownerRefundNote = "Full refund required (100%)."
	}
	ownerLines := append([]string{
		"Booking cancellation",
		"",
		fmt.Sprintf("Booking %s has been cancelled.", b.ID),
		"",
	}, bookingSummaryLines(b)...)
	ownerLines = append(ownerLines,
		fmt.Sprintf("Guest: %s (%s)", b.GuestName, b.GuestEmail),
		"",
		ownerRefundNote,
	)
	s.Email.sendOwner("Booking cancelled", ownerLines)

	guestRefundNote := "Per cancellation policy, cancellations within 5 days of arrival are non-refundable."
	if refund {
		guestRefundNote = "You will receive a full refund (100%) to your original payment method."
	}
	guestLines := []string{
		"Cancellation confirmation",
		"",
		fmt.Sprintf("Hello %s,", b.GuestName),
		"",
		"Your booking has been cancelled.",
		"",
		fmt.Sprintf("Room: %s", b.RoomID.Label()),
		fmt.Sprintf("Dates: %s - %s", b.CheckIn, b.CheckOut),
		fmt.Sprintf("Amount: %.0f EUR", b.TotalPrice),
		"",
		guestRefundNote,
	}
	s.Email.send(b.GuestEmail, "Your booking has been cancelled", guestLines)

	s.push(ctx, "Booking cancelled",
		fmt.Sprintf("%s, %s to %s", b.RoomID.Label(), b.CheckIn, b.CheckOut))
}

// TaxiRequested notifies the operator of a new transport request.
func (s *DefaultNotificationService) TaxiRequested(ctx context.Context, r models.TaxiRequest) {
	serviceLabel := "Shared taxi"
	if r.ServiceType == models.TaxiPrivado {
		serviceLabel = "Private taxi"
	}
	actionLine := ">>> The client confirmed a trip request (cash payment)."
	subject := fmt.Sprintf("New taxi request (cash) - %s", r.ClientName)
	if r.PayOnline {
		actionLine = ">>> The client attempted an online trip payment."
		subject = fmt.Sprintf("ONLINE PAYMENT ATTEMPT - Taxi - %s", r.ClientName)
	}

	s.Email.sendOwner(subject, []string{
		actionLine,
		fmt.Sprintf("Calculated total: %.0f EUR/USD", r.TotalPrice),
		"",
		"Client:",
		fmt.Sprintf("Name: %s", r.ClientName),
		fmt.Sprintf("WhatsApp: %s", r.ClientWhatsapp),
		"",
		"Trip:",
		fmt.Sprintf("Pickup address: %s", r.PickupAddress),
		fmt.Sprintf("Pickup date: %s", r.PickupDate),
		fmt.Sprintf("Taxi type: %s", serviceLabel),
		fmt.Sprintf("Passengers: %d", r.PassengersCount),
	})

	s.push(ctx, "New taxi request",
		fmt.Sprintf("%s, %s, %d passengers", serviceLabel, r.PickupDate, r.PassengersCount))
}

// SurveyInvite asks a checked-out guest for their opinion.
func (s *DefaultNotificationService) SurveyInvite(ctx context.Context, b models.Booking, surveyURL string) {
	s.Email.send(b.GuestEmail, "How was your stay at Casa Herenia y Pedro?", []string{
		fmt.Sprintf("Hello %s,", b.GuestName),
		"",
		"Thank you for staying with us. We would love to hear about your visit.",
		"",
		fmt.Sprintf("Share your experience: %s", surveyURL),
	})
}

// ContactMessage forwards a contact-form message to the operator.
func (s *DefaultNotificationService) ContactMessage(ctx context.Context, name, email, message string) {
	s.Email.sendOwner(fmt.Sprintf("Contact form - %s", name), []string{
		fmt.Sprintf("From: %s (%s)", name, email),
		"",
		message,
	})
}

// push sends the operator device notification when FCM is configured.
func (s *DefaultNotificationService) push(ctx context.Context, title, body string) {
	if s.FCM == nil || s.OwnerFCMToken == "" {
		return
	}
	msg := &messaging.Message{
		Token: s.OwnerFCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		s.Logger.Warn("operator push failed", zap.Error(err))
	}
}
