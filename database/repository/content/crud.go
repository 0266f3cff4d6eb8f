package contentRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"casaherenia/models"
)

// ErrNotFound is returned for missing posts or reviews.
var ErrNotFound = errors.New("content not found")

// CreatePost inserts a blog post and returns its ID.
func (r *mongoContentRepo) CreatePost(ctx context.Context, post models.Post) (string, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

// DeletePost removes a post by ID.
func (r *mongoContentRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Posts returns all posts, newest first.
func (r *mongoContentRepo) Posts(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.posts.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostBySlug returns one post by its slug.
func (r *mongoContentRepo) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.posts.FindOne(ctx, bson.M{"slug": slug}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CreateReview inserts a review pending approval.
func (r *mongoContentRepo) CreateReview(ctx context.Context, review models.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.Approved = false
	review.CreatedAt = time.Now()

	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		return "", err
	}
	return review.ID, nil
}

// ApproveReview flips a review's approval flag.
func (r *mongoContentRepo) ApproveReview(ctx context.Context, id string) error {
	res, err := r.reviews.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ApprovedReviews returns publicly visible reviews, newest first.
func (r *mongoContentRepo) ApprovedReviews(ctx context.Context) ([]models.Review, error) {
	return r.findReviews(ctx, bson.M{"approved": true})
}

// PendingReviews returns reviews awaiting moderation.
func (r *mongoContentRepo) PendingReviews(ctx context.Context) ([]models.Review, error) {
	return r.findReviews(ctx, bson.M{"approved": false})
}

func (r *mongoContentRepo) findReviews(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := r.reviews.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
