package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casaherenia/models"
	"casaherenia/services/availability"
)

// fakeAvailability serves a fixed blocked picture.
type fakeAvailability struct {
	blocked availability.BlockedDates
}

func (f *fakeAvailability) BlockedDates(context.Context) availability.BlockedDates {
	if f.blocked == nil {
		return availability.BlockedDates{}
	}
	return f.blocked
}

func (f *fakeAvailability) AdminBlockedDates(context.Context) availability.AdminBlockedDates {
	return availability.AdminBlockedDates{}
}

func newCreateService(repo *fakeRepo, notifier *recordingNotifier, avail *fakeAvailability) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:         repo,
		Availability: avail,
		Notifier:     notifier,
		Logger:       zap.NewNop(),
		SiteURL:      "https://casaherenia.example",
		Now:          func() time.Time { return time.Date(2026, time.January, 5, 10, 0, 0, 0, time.Local) },
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		RoomID:      "room_1",
		CheckIn:     "2026-03-10",
		CheckOut:    "2026-03-13",
		GuestsCount: 2,
		GuestName:   "Ana",
		GuestEmail:  "ana@example.com",
	}
}

func TestCreateBookingPricesServerSide(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newCreateService(repo, notifier, &fakeAvailability{})

	result, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	// (55 base + 10 extra guest) * 3 nights.
	assert.Equal(t, 195.0, result.Booking.TotalPrice)
	assert.Equal(t, models.BookingStatusConfirmed, result.Booking.Status)
	assert.Empty(t, result.CheckoutURL)

	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, result.Booking.ID, notifier.confirmed[0].ID)
}

func TestCreateBookingRejectsUnknownUnit(t *testing.T) {
	svc := newCreateService(newFakeRepo(), &recordingNotifier{}, &fakeAvailability{})

	in := validInput()
	in.RoomID = "penthouse"
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestCreateBookingEnforcesGuestCap(t *testing.T) {
	svc := newCreateService(newFakeRepo(), &recordingNotifier{}, &fakeAvailability{})

	in := validInput()
	in.GuestsCount = 4 // rooms sleep at most 3
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidGuests)

	in.GuestsCount = 0
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidGuests)

	in = validInput()
	in.RoomID = "full_villa"
	in.GuestsCount = 6
	_, err = svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBookingRejectsMissingContact(t *testing.T) {
	svc := newCreateService(newFakeRepo(), &recordingNotifier{}, &fakeAvailability{})

	in := validInput()
	in.GuestName = "   "
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestCreateBookingRejectsTakenNights(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newCreateService(repo, notifier, &fakeAvailability{
		blocked: availability.BlockedDates{
			models.UnitRoom1: {"2026-03-12"},
		},
	})

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Empty(t, repo.bookings)
	assert.Empty(t, notifier.confirmed)
}

func TestCreateBookingCheckoutDayOverlapIsFine(t *testing.T) {
	// A stay ending on the 13th does not collide with a block starting
	// on the 13th: the departure day is free.
	svc := newCreateService(newFakeRepo(), &recordingNotifier{}, &fakeAvailability{
		blocked: availability.BlockedDates{
			models.UnitRoom1: {"2026-03-13"},
		},
	})

	_, err := svc.Create(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestConfirmFromCheckoutPromotesPending(t *testing.T) {
	b := confirmedBooking("bk-1", "2026-03-20")
	b.Status = models.BookingStatusPending
	repo := newFakeRepo(b)
	notifier := &recordingNotifier{}
	svc := newCreateService(repo, notifier, &fakeAvailability{})

	require.NoError(t, svc.ConfirmFromCheckout(context.Background(), "bk-1"))
	assert.Equal(t, models.BookingStatusConfirmed, repo.bookings["bk-1"].Status)
	require.Len(t, notifier.confirmed, 1)
}

func TestConfirmFromCheckoutIdempotentOnReplay(t *testing.T) {
	b := confirmedBooking("bk-1", "2026-03-20")
	b.Status = models.BookingStatusPending
	repo := newFakeRepo(b)
	notifier := &recordingNotifier{}
	svc := newCreateService(repo, notifier, &fakeAvailability{})

	require.NoError(t, svc.ConfirmFromCheckout(context.Background(), "bk-1"))
	require.NoError(t, svc.ConfirmFromCheckout(context.Background(), "bk-1"))

	// The replayed delivery must not re-notify the guest.
	assert.Len(t, notifier.confirmed, 1)
}
