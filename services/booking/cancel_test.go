package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"casaherenia/models"
	"casaherenia/services/availability"
)

// fakeRepo is an in-memory bookingRepoIface.
type fakeRepo struct {
	bookings map[string]*models.Booking
	err      error
}

func newFakeRepo(bookings ...*models.Booking) *fakeRepo {
	m := make(map[string]*models.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepo{bookings: m}
}

func (f *fakeRepo) Create(_ context.Context, b models.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b.ID = "bk-new"
	f.bookings[b.ID] = &b
	return b.ID, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	dup := *b
	return &dup, nil
}

func (f *fakeRepo) UpdateStatusIf(_ context.Context, id string, allowed []string, to string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for _, status := range allowed {
		if b.Status == status {
			b.Status = to
			dup := *b
			return &dup, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// recordingNotifier captures notification calls.
type recordingNotifier struct {
	cancelled    []models.Booking
	cancelRefund []bool
	confirmed    []models.Booking
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, b models.Booking, _ string) {
	n.confirmed = append(n.confirmed, b)
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, b models.Booking, refund bool) {
	n.cancelled = append(n.cancelled, b)
	n.cancelRefund = append(n.cancelRefund, refund)
}

func (n *recordingNotifier) TaxiRequested(context.Context, models.TaxiRequest) {}

func (n *recordingNotifier) SurveyInvite(context.Context, models.Booking, string) {}

func (n *recordingNotifier) ContactMessage(context.Context, string, string, string) {}

func newCancelService(repo *fakeRepo, notifier *recordingNotifier, now time.Time) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Notifier: notifier,
		Logger:   zap.NewNop(),
		SiteURL:  "https://casaherenia.example",
		Now:      func() time.Time { return now },
	}
}

func confirmedBooking(id, checkIn string) *models.Booking {
	return &models.Booking{
		ID:         id,
		RoomID:     models.UnitRoom1,
		CheckIn:    checkIn,
		CheckOut:   "2026-03-25",
		GuestEmail: "guest@example.com",
		Status:     models.BookingStatusConfirmed,
	}
}

func TestRefundEligibleStrictThreshold(t *testing.T) {
	checkIn, err := availability.ParseDay("2026-03-20")
	require.NoError(t, err)

	sixDaysBefore := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local)
	assert.True(t, RefundEligible(checkIn, sixDaysBefore))

	// Exactly five whole days out is already non-refundable.
	fiveDaysBefore := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)
	assert.False(t, RefundEligible(checkIn, fiveDaysBefore))

	// One second into the fifth day changes nothing: whole days only.
	fiveDaysBeforePlus := time.Date(2026, time.March, 15, 0, 0, 1, 0, time.Local)
	assert.False(t, RefundEligible(checkIn, fiveDaysBeforePlus))

	// End of the sixth day out still refunds.
	lateSixth := time.Date(2026, time.March, 14, 23, 59, 59, 0, time.Local)
	assert.True(t, RefundEligible(checkIn, lateSixth))
}

func TestCancelRefundWhenEarly(t *testing.T) {
	repo := newFakeRepo(confirmedBooking("bk-1", "2026-03-20"))
	notifier := &recordingNotifier{}
	svc := newCancelService(repo, notifier, time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local))

	outcome, err := svc.Cancel(context.Background(), "bk-1", "guest@example.com")
	require.NoError(t, err)

	assert.True(t, outcome.RefundEligible)
	assert.Equal(t, models.BookingStatusCancelledRefund, outcome.Status)
	assert.Equal(t, models.BookingStatusCancelledRefund, repo.bookings["bk-1"].Status)

	require.Len(t, notifier.cancelled, 1)
	assert.True(t, notifier.cancelRefund[0])
}

func TestCancelNoRefundWhenLate(t *testing.T) {
	repo := newFakeRepo(confirmedBooking("bk-1", "2026-03-20"))
	notifier := &recordingNotifier{}
	svc := newCancelService(repo, notifier, time.Date(2026, time.March, 17, 10, 0, 0, 0, time.Local))

	outcome, err := svc.Cancel(context.Background(), "bk-1", "guest@example.com")
	require.NoError(t, err)

	assert.False(t, outcome.RefundEligible)
	assert.Equal(t, models.BookingStatusCancelledNoRefund, outcome.Status)
	require.Len(t, notifier.cancelRefund, 1)
	assert.False(t, notifier.cancelRefund[0])
}

func TestCancelEmailGuardIsCaseAndSpaceInsensitive(t *testing.T) {
	repo := newFakeRepo(confirmedBooking("bk-1", "2026-03-20"))
	svc := newCancelService(repo, &recordingNotifier{}, time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local))

	_, err := svc.Cancel(context.Background(), "bk-1", "  GUEST@Example.COM ")
	assert.NoError(t, err)
}

func TestCancelRejectsWrongEmail(t *testing.T) {
	repo := newFakeRepo(confirmedBooking("bk-1", "2026-03-20"))
	notifier := &recordingNotifier{}
	svc := newCancelService(repo, notifier, time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local))

	_, err := svc.Cancel(context.Background(), "bk-1", "stranger@example.com")
	assert.ErrorIs(t, err, ErrEmailMismatch)
	assert.Equal(t, models.BookingStatusConfirmed, repo.bookings["bk-1"].Status)
	assert.Empty(t, notifier.cancelled)
}

func TestCancelUnknownBooking(t *testing.T) {
	svc := newCancelService(newFakeRepo(), &recordingNotifier{}, time.Now())

	_, err := svc.Cancel(context.Background(), "nope", "guest@example.com")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelAlreadyCancelledIsTerminal(t *testing.T) {
	b := confirmedBooking("bk-1", "2026-03-20")
	b.Status = models.BookingStatusCancelledNoRefund
	repo := newFakeRepo(b)
	notifier := &recordingNotifier{}
	// Early enough for a refund; the terminal state must still win.
	svc := newCancelService(repo, notifier, time.Date(2026, time.March, 1, 10, 0, 0, 0, time.Local))

	_, err := svc.Cancel(context.Background(), "bk-1", "guest@example.com")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, models.BookingStatusCancelledNoRefund, repo.bookings["bk-1"].Status)
	assert.Empty(t, notifier.cancelled)
}

func TestCancelLosingRaceReportsAlreadyCancelled(t *testing.T) {
	// The booking reads as confirmed, but the guarded update finds it
	// already transitioned: the second caller must get a clean conflict.
	b := confirmedBooking("bk-1", "2026-03-20")
	repo := newFakeRepo(b)
	svc := newCancelService(repo, &recordingNotifier{}, time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local))

	_, err := svc.Cancel(context.Background(), "bk-1", "guest@example.com")
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), "bk-1", "guest@example.com")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestGetForCancelPreviewsRefund(t *testing.T) {
	repo := newFakeRepo(confirmedBooking("bk-1", "2026-03-20"))
	svc := newCancelService(repo, &recordingNotifier{}, time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local))

	b, refund, err := svc.GetForCancel(context.Background(), "bk-1", "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID)
	assert.True(t, refund)

	// The preview never mutates state.
	assert.Equal(t, models.BookingStatusConfirmed, repo.bookings["bk-1"].Status)
}

func TestGetForCancelEnforcesEmailGuard(t *testing.T) {
	repo := newFakeRepo(confirmedBooking("bk-1", "2026-03-20"))
	svc := newCancelService(repo, &recordingNotifier{}, time.Now())

	_, _, err := svc.GetForCancel(context.Background(), "bk-1", "stranger@example.com")
	assert.ErrorIs(t, err, ErrEmailMismatch)
}
