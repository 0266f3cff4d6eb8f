package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/services/content"
	"casaherenia/utils"
)

// ContentHandler exposes blog posts and guest reviews.
type ContentHandler struct {
	Service  *content.Service
	External *content.ExternalReviewService
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	CoverURL string `json:"cover_url"`
}

type submitReviewRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// ListPosts handles GET /api/posts.
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.Service.Posts(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list posts", "")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/posts/:slug.
func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.Service.PostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "post not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not load post", "")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /api/admin/posts.
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "title and body are required", err.Error())
		return
	}

	post, err := h.Service.CreatePost(c.Request.Context(), req.Title, req.Body, req.CoverURL)
	if err != nil {
		if errors.Is(err, content.ErrEmptyPost) {
			utils.JSONError(c, http.StatusBadRequest, "title and body are required", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not create post", "")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePost handles DELETE /api/admin/posts/:id.
func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.Service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "post not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not delete post", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListReviews handles GET /api/reviews (approved only).
func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Service.ApprovedReviews(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list reviews", "")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// SubmitReview handles POST /api/reviews.
func (h *ContentHandler) SubmitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guest name, rating and comment are required", err.Error())
		return
	}

	review, err := h.Service.SubmitReview(c.Request.Context(), req.GuestName, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidRating), errors.Is(err, content.ErrEmptyReview):
			utils.JSONError(c, http.StatusBadRequest, "invalid review", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "could not submit review", "")
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListExternalReviews handles GET /api/external-reviews. Responses are
// already day-cached server side, so edge caching adds only a short window.
func (h *ContentHandler) ListExternalReviews(c *gin.Context) {
	reviews, err := h.External.Reviews(c.Request.Context())
	if err != nil {
		if errors.Is(err, content.ErrExternalReviewsDisabled) {
			utils.JSONError(c, http.StatusServiceUnavailable, "external reviews are not available", "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "could not load external reviews", "")
		return
	}

	c.Header("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=1800")
	c.JSON(http.StatusOK, reviews)
}

// ListPendingReviews handles GET /api/admin/reviews/pending.
func (h *ContentHandler) ListPendingReviews(c *gin.Context) {
	reviews, err := h.Service.PendingReviews(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list pending reviews", "")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ApproveReview handles POST /api/admin/reviews/:id/approve.
func (h *ContentHandler) ApproveReview(c *gin.Context) {
	if err := h.Service.ApproveReview(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not approve review", "")
		return
	}
	c.Status(http.StatusNoContent)
}
