package bookingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"casaherenia/models"
)

// Create inserts a new reservation and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a reservation by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Confirmed returns every reservation in confirmed status.
func (r *mongoBookingRepo) Confirmed(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": models.BookingStatusConfirmed})
}

// ConfirmedForUnits returns confirmed reservations for the given units.
func (r *mongoBookingRepo) ConfirmedForUnits(ctx context.Context, units []models.Unit) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"status":  models.BookingStatusConfirmed,
		"room_id": bson.M{"$in": units},
	})
}

// UpdateStatusIf performs a conditional status transition. The status guard
// lives in the update filter so two concurrent transitions cannot both pass
// the "not already cancelled" check.
func (r *mongoBookingRepo) UpdateStatusIf(ctx context.Context, id string, allowed []string, to string) (*models.Booking, error) {
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": allowed},
	}
	update := bson.M{"$set": bson.M{"status": to}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckedOutOn returns confirmed bookings whose checkout equals day and
// that have not been surveyed yet.
func (r *mongoBookingRepo) CheckedOutOn(ctx context.Context, day string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"status":         models.BookingStatusConfirmed,
		"check_out":      day,
		"survey_sent_at": bson.M{"$exists": false},
	})
}

// MarkSurveySent stamps the survey timestamp on a booking.
func (r *mongoBookingRepo) MarkSurveySent(ctx context.Context, id string, at time.Time) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"survey_sent_at": at}})
	return err
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
