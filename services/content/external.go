package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	externalReviewsCacheKey = "external_reviews:tripadvisor"
	// One fetch a day keeps well inside the RapidAPI quota; the upstream
	// reviews change far less often than that.
	externalReviewsCacheTTL = 24 * time.Hour
	externalFetchTimeout    = 10 * time.Second
	externalReviewsLimit    = "5"
)

// ErrExternalReviewsDisabled is returned when the RapidAPI credentials are
// not configured.
var ErrExternalReviewsDisabled = errors.New("external reviews not configured")

// ExternalReview is the cleaned third-party review shape served to the
// frontend.
type ExternalReview struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

// rapidAPIReviewItem is the raw upstream item. The API has shifted field
// names between plan versions, so author and date each have a fallback.
type rapidAPIReviewItem struct {
	// Some plan versions send numeric IDs, others strings.
	ID     json.RawMessage `json:"id"`
	Rating *int            `json:"rating"`
	Text   string          `json:"text"`
	User   struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user"`
	Author        string `json:"author"`
	PublishedDate string `json:"publishedDate"`
	CreateDate    string `json:"createDate"`
}

type rapidAPIReviewsResponse struct {
	Data struct {
		Reviews []rapidAPIReviewItem `json:"reviews"`
	} `json:"data"`
	Reviews []rapidAPIReviewItem `json:"reviews"`
}

// ExternalReviewService proxies aggregated third-party reviews from the
// TripAdvisor RapidAPI, cached for a day so browsing the site never burns
// quota. Disabled when no API key is configured.
type ExternalReviewService struct {
	APIKey     string
	APIHost    string
	LocationID string
	// BaseURL is the reviews endpoint, derived from APIHost.
	BaseURL string
	Client  *http.Client
	Cache   *redis.Client // nil disables caching
	Logger  *zap.Logger
}

// NewExternalReviewService wires the proxy with its fetch timeout.
func NewExternalReviewService(apiKey, apiHost, locationID string, cache *redis.Client, logger *zap.Logger) *ExternalReviewService {
	return &ExternalReviewService{
		APIKey:     apiKey,
		APIHost:    apiHost,
		LocationID: locationID,
		BaseURL:    "https://" + apiHost + "/api/v1/hotels/getHotelReviews",
		Client:     &http.Client{Timeout: externalFetchTimeout},
		Cache:      cache,
		Logger:     logger,
	}
}

// Enabled reports whether the upstream credentials are configured.
func (s *ExternalReviewService) Enabled() bool {
	return s.APIKey != "" && s.LocationID != ""
}

// Reviews returns the latest third-party reviews, via the cache when fresh.
func (s *ExternalReviewService) Reviews(ctx context.Context) ([]ExternalReview, error) {
	if !s.Enabled() {
		return nil, ErrExternalReviewsDisabled
	}

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, externalReviewsCacheKey).Result(); err == nil {
			var reviews []ExternalReview
			if err := json.Unmarshal([]byte(cached), &reviews); err == nil {
				return reviews, nil
			}
			s.Logger.Warn("dropping unreadable external reviews cache entry", zap.Error(err))
		}
	}

	reviews, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(reviews); err == nil {
			if err := s.Cache.Set(ctx, externalReviewsCacheKey, payload, externalReviewsCacheTTL).Err(); err != nil {
				s.Logger.Warn("external reviews cache write failed", zap.Error(err))
			}
		}
	}
	return reviews, nil
}

func (s *ExternalReviewService) fetch(ctx context.Context) ([]ExternalReview, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse reviews endpoint: %w", err)
	}
	q := u.Query()
	q.Set("id", s.LocationID)
	q.Set("limit", externalReviewsLimit)
	q.Set("sort", "newest")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build reviews request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", s.APIKey)
	req.Header.Set("X-RapidAPI-Host", s.APIHost)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch external reviews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch external reviews: HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read reviews body: %w", err)
	}

	var parsed rapidAPIReviewsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode reviews body: %w", err)
	}

	items := parsed.Data.Reviews
	if len(items) == 0 {
		items = parsed.Reviews
	}

	reviews := make([]ExternalReview, 0, len(items))
	for i, item := range items {
		reviews = append(reviews, mapExternalReview(item, i))
	}

	s.Logger.Info("external reviews fetched", zap.Int("count", len(reviews)))
	return reviews, nil
}

func mapExternalReview(item rapidAPIReviewItem, index int) ExternalReview {
	rating := 5
	if item.Rating != nil {
		rating = *item.Rating
	}
	author := item.User.Username
	if author == "" {
		author = item.User.Name
	}
	if author == "" {
		author = item.Author
	}
	if author == "" {
		author = "Traveler"
	}
	id := strings.Trim(string(item.ID), `"`)
	if id == "" || id == "null" {
		id = fmt.Sprintf("review-%d", index)
	}
	date := item.PublishedDate
	if date == "" {
		date = item.CreateDate
	}
	return ExternalReview{
		ID:     id,
		Author: author,
		Rating: rating,
		Text:   item.Text,
		Source: "TripAdvisor",
		Date:   date,
	}
}
