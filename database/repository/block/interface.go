package blockRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"casaherenia/models"
)

// BlockRepository defines storage operations for manual date blocks. All
// stored blocks are active; there is no status filter.
type BlockRepository interface {
	Create(ctx context.Context, block models.ManualBlock) (string, error)
	Delete(ctx context.Context, blockID string) error
	All(ctx context.Context) ([]models.ManualBlock, error)
	ByUnit(ctx context.Context, unit models.Unit) ([]models.ManualBlock, error)
	ForUnits(ctx context.Context, units []models.Unit) ([]models.ManualBlock, error)
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo returns a BlockRepository backed by MongoDB.
func NewMongoBlockRepo(client *mongo.Client, dbName string) BlockRepository {
	return &mongoBlockRepo{
		coll: client.Database(dbName).Collection("manual_blocks"),
	}
}
