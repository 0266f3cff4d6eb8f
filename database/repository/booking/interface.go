package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"casaherenia/models"
)

// BookingRepository defines storage operations for guest reservations.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Confirmed returns every reservation in confirmed status.
	Confirmed(ctx context.Context) ([]models.Booking, error)
	// ConfirmedForUnits returns confirmed reservations for the given units.
	ConfirmedForUnits(ctx context.Context, units []models.Unit) ([]models.Booking, error)
	// UpdateStatusIf transitions a booking to a new status only while its
	// current status is one of the allowed values, and returns the
	// post-update document. Returns mongo.ErrNoDocuments when the guard
	// does not match.
	UpdateStatusIf(ctx context.Context, id string, allowed []string, to string) (*models.Booking, error)
	// CheckedOutOn returns confirmed bookings whose checkout day equals day
	// and that have not yet received a post-stay survey.
	CheckedOutOn(ctx context.Context, day string) ([]models.Booking, error)
	MarkSurveySent(ctx context.Context, id string, at time.Time) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(client *mongo.Client, dbName string) BookingRepository {
	return &mongoBookingRepo{
		coll: client.Database(dbName).Collection("bookings"),
	}
}
