package blockRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"casaherenia/models"
)

// ErrBlockNotFound is returned when deleting a block that does not exist.
var ErrBlockNotFound = errors.New("manual block not found")

// Create inserts a new manual block and returns its ID.
func (r *mongoBlockRepo) Create(ctx context.Context, block models.ManualBlock) (string, error) {
	if block.BlockID == "" {
		block.BlockID = uuid.New().String()
	}
	block.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return "", err
	}
	return block.BlockID, nil
}

// Delete removes a manual block by ID.
func (r *mongoBlockRepo) Delete(ctx context.Context, blockID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"block_id": blockID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBlockNotFound
	}
	return nil
}

// All returns every manual block.
func (r *mongoBlockRepo) All(ctx context.Context) ([]models.ManualBlock, error) {
	return r.find(ctx, bson.M{})
}

// ByUnit returns the blocks of one unit, ordered by start date for the
// admin list view.
func (r *mongoBlockRepo) ByUnit(ctx context.Context, unit models.Unit) ([]models.ManualBlock, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"room_id": unit},
		options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.ManualBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ForUnits returns the blocks belonging to any of the given units.
func (r *mongoBlockRepo) ForUnits(ctx context.Context, units []models.Unit) ([]models.ManualBlock, error) {
	return r.find(ctx, bson.M{"room_id": bson.M{"$in": units}})
}

func (r *mongoBlockRepo) find(ctx context.Context, filter bson.M) ([]models.ManualBlock, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.ManualBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
