package taxiRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"casaherenia/models"
)

// Create inserts a new taxi request and returns its ID.
func (r *mongoTaxiRepo) Create(ctx context.Context, req models.TaxiRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	req.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return "", err
	}
	return req.ID, nil
}

// All returns every taxi request, newest first.
func (r *mongoTaxiRepo) All(ctx context.Context) ([]models.TaxiRequest, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reqs []models.TaxiRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}
