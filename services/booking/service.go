package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"casaherenia/models"
	"casaherenia/services/availability"
	"casaherenia/services/notification"
)

// CreateBookingInput is the guest-facing reservation request. Prices are
// never accepted from the client; the total is computed server-side from
// the unit catalog.
type CreateBookingInput struct {
	RoomID      string `json:"room_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	GuestsCount int    `json:"guests_count"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email"`
	GuestPhone  string `json:"guest_phone"`
	PayOnline   bool   `json:"pay_online"`
}

// CreateBookingResult carries the stored booking plus, for online payment,
// the Stripe Checkout URL the guest is redirected to.
type CreateBookingResult struct {
	Booking     models.Booking `json:"booking"`
	CheckoutURL string         `json:"checkout_url,omitempty"`
}

// BookingService owns the reservation lifecycle: creation with server-side
// pricing, cancellation under the refund policy, and payment confirmation.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID, email string) (*CancelOutcome, error)
	GetForCancel(ctx context.Context, bookingID, email string) (*models.Booking, bool, error)
	ConfirmFromCheckout(ctx context.Context, bookingID string) error
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo         bookingRepoIface
	Availability availability.Service
	Notifier     notification.NotificationService
	Logger       *zap.Logger

	// SiteURL is the public origin used to build checkout redirect and
	// cancellation links.
	SiteURL string

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

// bookingRepoIface is the slice of the booking repository this service
// needs, declared locally so fakes stay small.
type bookingRepoIface interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatusIf(ctx context.Context, id string, allowed []string, to string) (*models.Booking, error)
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates the request, prices it against the unit catalog, checks
// the requested nights against the merged availability picture, stores the
// booking and, for online payment, opens a Stripe Checkout session.
func (s *DefaultBookingService) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	unit := models.Unit(strings.TrimSpace(in.RoomID))
	property, ok := models.Properties[unit]
	if !ok {
		return nil, ErrInvalidUnit
	}
	if in.GuestsCount < 1 || in.GuestsCount > property.MaxGuests {
		return nil, fmt.Errorf("%w: %s sleeps at most %d", ErrInvalidGuests, unit.Label(), property.MaxGuests)
	}
	if strings.TrimSpace(in.GuestName) == "" || strings.TrimSpace(in.GuestEmail) == "" {
		return nil, ErrMissingContact
	}

	total, err := TotalPrice(property, in.CheckIn, in.CheckOut, in.GuestsCount)
	if err != nil {
		return nil, err
	}

	if err := s.checkAvailable(ctx, unit, in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}

	status := models.BookingStatusConfirmed
	if in.PayOnline {
		status = models.BookingStatusPending
	}

	b := models.Booking{
		RoomID:      unit,
		CheckIn:     in.CheckIn,
		CheckOut:    in.CheckOut,
		GuestsCount: in.GuestsCount,
		TotalPrice:  total,
		GuestName:   strings.TrimSpace(in.GuestName),
		GuestEmail:  strings.TrimSpace(in.GuestEmail),
		GuestPhone:  strings.TrimSpace(in.GuestPhone),
		Status:      status,
		CreatedAt:   s.now(),
	}

	id, err := s.Repo.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}
	b.ID = id

	result := &CreateBookingResult{Booking: b}

	if in.PayOnline {
		checkoutURL, err := s.openCheckoutSession(b)
		if err != nil {
			// The pending booking stays; the guest can retry payment or
			// the owner can confirm it manually.
			s.Logger.Error("stripe checkout session failed",
				zap.String("booking", b.ID), zap.Error(err))
			return nil, fmt.Errorf("open checkout session: %w", err)
		}
		result.CheckoutURL = checkoutURL
		s.Logger.Info("booking created, awaiting payment",
			zap.String("booking", b.ID), zap.String("unit", string(unit)))
		return result, nil
	}

	s.Logger.Info("booking confirmed",
		zap.String("booking", b.ID),
		zap.String("unit", string(unit)),
		zap.Float64("total", total))
	s.Notifier.BookingConfirmed(ctx, b, s.cancelURL(b.ID))
	return result, nil
}

// ConfirmFromCheckout promotes a pending booking after Stripe reports the
// checkout session as paid. Replayed webhook deliveries are harmless: the
// status guard makes the transition idempotent.
func (s *DefaultBookingService) ConfirmFromCheckout(ctx context.Context, bookingID string) error {
	updated, err := s.Repo.UpdateStatusIf(ctx, bookingID,
		[]string{models.BookingStatusPending}, models.BookingStatusConfirmed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.Logger.Warn("checkout confirmation for booking not in pending state",
				zap.String("booking", bookingID))
			return nil
		}
		return fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	s.Logger.Info("booking confirmed via checkout", zap.String("booking", bookingID))
	s.Notifier.BookingConfirmed(ctx, *updated, s.cancelURL(bookingID))
	return nil
}

// checkAvailable rejects requests whose nights collide with the merged
// blocked picture of the unit. The availability layer degrades to empty on
// source failures, so this is a best-effort screen; the calendar feeds and
// the owner remain the backstop for true conflicts.
func (s *DefaultBookingService) checkAvailable(ctx context.Context, unit models.Unit, checkIn, checkOut string) error {
	if s.Availability == nil {
		return nil
	}
	nights, err := availability.ExpandRangeKeys(checkIn, checkOut, availability.EndExclusive)
	if err != nil {
		return ErrInvalidDateRange
	}
	blocked := s.Availability.BlockedDates(ctx)
	taken := make(map[string]struct{}, len(blocked[unit]))
	for _, day := range blocked[unit] {
		taken[day] = struct{}{}
	}
	for _, night := range nights {
		if _, hit := taken[night]; hit {
			return fmt.Errorf("%w: %s is taken", ErrDatesUnavailable, night)
		}
	}
	return nil
}

func (s *DefaultBookingService) openCheckoutSession(b models.Booking) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s · %s to %s",
							b.RoomID.Label(), b.CheckIn, b.CheckOut)),
					},
					UnitAmount: stripe.Int64(int64(b.TotalPrice * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.SiteURL + "/booking/success?id=" + b.ID),
		CancelURL:     stripe.String(s.SiteURL + "/booking/cancelled?id=" + b.ID),
		CustomerEmail: stripe.String(b.GuestEmail),
	}
	params.AddMetadata("bookingId", b.ID)

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

func (s *DefaultBookingService) cancelURL(bookingID string) string {
	return s.SiteURL + "/booking/cancel?id=" + bookingID
}
