package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"casaherenia/models"
	"casaherenia/services/availability"
)

// RefundThresholdDays is the free-cancellation window: cancelling strictly
// more than this many whole days before check-in earns a full refund.
// Exactly at the threshold is non-refundable. The strict inequality is a
// fixed business rule with direct monetary consequences.
const RefundThresholdDays = 5

// RefundEligible decides refund eligibility from the check-in date and the
// evaluation instant, counting whole calendar days on normalized values so
// time-of-day never shifts the outcome.
func RefundEligible(checkIn, now time.Time) bool {
	return availability.WholeDaysBetween(now, checkIn) > RefundThresholdDays
}

// CancelOutcome reports the result of a cancellation.
type CancelOutcome struct {
	Status         string `json:"status"`
	RefundEligible bool   `json:"refund_eligible"`
}

// GetForCancel loads a booking for the cancellation page, enforcing the
// contact-identifier guard before anything is revealed.
func (s *DefaultBookingService) GetForCancel(ctx context.Context, bookingID, email string) (*models.Booking, bool, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, ErrBookingNotFound
		}
		return nil, false, fmt.Errorf("load booking: %w", err)
	}
	if !emailsMatch(b.GuestEmail, email) {
		return nil, false, ErrEmailMismatch
	}

	checkIn, err := availability.ParseDay(b.CheckIn)
	if err != nil {
		return nil, false, fmt.Errorf("booking %s has malformed check-in: %w", b.ID, err)
	}
	return b, RefundEligible(checkIn, s.now()), nil
}

// Cancel transitions a confirmed booking to its terminal cancellation
// state. The status guard lives inside the store update, so two concurrent
// cancellations cannot both succeed. Notifications are best-effort; the
// status change is the source of truth.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, email string) (*CancelOutcome, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}

	if !emailsMatch(b.GuestEmail, email) {
		return nil, ErrEmailMismatch
	}
	if b.Cancelled() {
		return nil, ErrAlreadyCancelled
	}

	checkIn, err := availability.ParseDay(b.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("booking %s has malformed check-in: %w", b.ID, err)
	}

	refund := RefundEligible(checkIn, s.now())
	newStatus := models.BookingStatusCancelledNoRefund
	if refund {
		newStatus = models.BookingStatusCancelledRefund
	}

	updated, err := s.Repo.UpdateStatusIf(ctx, bookingID,
		[]string{models.BookingStatusPending, models.BookingStatusConfirmed}, newStatus)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost the race against a concurrent cancellation.
			return nil, ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.Logger.Info("booking cancelled",
		zap.String("booking", bookingID),
		zap.String("status", newStatus),
		zap.Bool("refund", refund))

	s.Notifier.BookingCancelled(ctx, *updated, refund)

	return &CancelOutcome{Status: updated.Status, RefundEligible: refund}, nil
}

// emailsMatch compares contact identifiers case- and whitespace-
// insensitively.
func emailsMatch(recorded, supplied string) bool {
	return strings.EqualFold(strings.TrimSpace(recorded), strings.TrimSpace(supplied))
}
