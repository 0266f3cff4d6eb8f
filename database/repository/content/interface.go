package contentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"casaherenia/models"
)

// ContentRepository stores blog posts and guest reviews.
type ContentRepository interface {
	CreatePost(ctx context.Context, post models.Post) (string, error)
	DeletePost(ctx context.Context, id string) error
	Posts(ctx context.Context) ([]models.Post, error)
	PostBySlug(ctx context.Context, slug string) (*models.Post, error)

	CreateReview(ctx context.Context, review models.Review) (string, error)
	ApproveReview(ctx context.Context, id string) error
	ApprovedReviews(ctx context.Context) ([]models.Review, error)
	PendingReviews(ctx context.Context) ([]models.Review, error)
}

type mongoContentRepo struct {
	posts   *mongo.Collection
	reviews *mongo.Collection
}

// NewMongoContentRepo returns a ContentRepository backed by MongoDB.
func NewMongoContentRepo(client *mongo.Client, dbName string) ContentRepository {
	db := client.Database(dbName)
	return &mongoContentRepo{
		posts:   db.Collection("posts"),
		reviews: db.Collection("reviews"),
	}
}
