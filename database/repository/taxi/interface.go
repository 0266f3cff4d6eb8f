package taxiRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"casaherenia/models"
)

// TaxiRepository stores transport requests.
type TaxiRepository interface {
	Create(ctx context.Context, req models.TaxiRequest) (string, error)
	All(ctx context.Context) ([]models.TaxiRequest, error)
}

type mongoTaxiRepo struct {
	coll *mongo.Collection
}

// NewMongoTaxiRepo returns a TaxiRepository backed by MongoDB.
func NewMongoTaxiRepo(client *mongo.Client, dbName string) TaxiRepository {
	return &mongoTaxiRepo{
		coll: client.Database(dbName).Collection("taxi_requests"),
	}
}
