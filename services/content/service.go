package content

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	contentRepo "casaherenia/database/repository/content"
	"casaherenia/models"
)

var (
	ErrEmptyPost     = errors.New("post title and body are required")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyReview   = errors.New("guest name and comment are required")
	ErrPostNotFound  = errors.New("post not found")
)

// Service manages blog posts and guest reviews.
type Service struct {
	Repo   contentRepo.ContentRepository
	Logger *zap.Logger
}

// CreatePost stores a post, deriving a URL slug from the title.
func (s *Service) CreatePost(ctx context.Context, title, body, coverURL string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, ErrEmptyPost
	}

	post := models.Post{
		Slug:      Slugify(title),
		Title:     title,
		Body:      body,
		CoverURL:  strings.TrimSpace(coverURL),
		CreatedAt: time.Now(),
	}
	id, err := s.Repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	s.Logger.Info("post published", zap.String("slug", post.Slug))
	return &post, nil
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	err := s.Repo.DeletePost(ctx, id)
	if errors.Is(err, contentRepo.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *Service) Posts(ctx context.Context) ([]models.Post, error) {
	return s.Repo.Posts(ctx)
}

func (s *Service) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.Repo.PostBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if errors.Is(err, contentRepo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

// SubmitReview stores a guest review in pending state; it only becomes
// public after approval.
func (s *Service) SubmitReview(ctx context.Context, guestName string, rating int, comment string) (*models.Review, error) {
	guestName = strings.TrimSpace(guestName)
	comment = strings.TrimSpace(comment)
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if guestName == "" || comment == "" {
		return nil, ErrEmptyReview
	}

	review := models.Review{
		GuestName: guestName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	id, err := s.Repo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id
	s.Logger.Info("review submitted", zap.String("review", id), zap.Int("rating", rating))
	return &review, nil
}

func (s *Service) ApproveReview(ctx context.Context, id string) error {
	return s.Repo.ApproveReview(ctx, id)
}

func (s *Service) ApprovedReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.ApprovedReviews(ctx)
}

func (s *Service) PendingReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.PendingReviews(ctx)
}

// Slugify lowercases a title and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
