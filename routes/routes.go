package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"casaherenia/config"
	"casaherenia/handlers"
	"casaherenia/middleware"
)

// RegisterPublicRoutes registers the guest-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.Availability.GetBlockedDates)
		api.GET("/ical/:room", hb.ICal.GetCalendar)

		api.POST("/bookings", hb.Booking.CreateBooking)
		api.GET("/bookings/:id/cancel-info", hb.Booking.GetCancelInfo)
		api.POST("/bookings/:id/cancel", hb.Booking.CancelBooking)

		api.POST("/taxi", hb.Taxi.RequestTaxi)
		api.POST("/chat", hb.Chat.Chat)
		api.POST("/contact", hb.Contact.SendMessage)

		api.GET("/posts", hb.Content.ListPosts)
		api.GET("/posts/:slug", hb.Content.GetPost)
		api.GET("/reviews", hb.Content.ListReviews)
		api.POST("/reviews", hb.Content.SubmitReview)
		api.GET("/external-reviews", hb.Content.ListExternalReviews)

		api.GET("/health", hb.Health.GetHealth)
	}
}

// RegisterWebhookRoutes registers payment-provider callbacks. They sit
// outside the rate limiter: Stripe bursts retries and carries its own
// signature auth.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.Webhook.HandleWebhook)
}

// RegisterAdminRoutes registers the owner surface behind the shared key.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, adminKey string) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminKeyAuth(adminKey))
	{
		admin.GET("/availability", hb.Availability.GetAdminBlockedDates)

		admin.GET("/blocks", hb.Blocks.ListBlocks)
		admin.POST("/blocks", hb.Blocks.CreateBlock)
		admin.DELETE("/blocks/:id", hb.Blocks.DeleteBlock)

		admin.GET("/taxi", hb.Taxi.ListTaxiRequests)

		admin.POST("/posts", hb.Content.CreatePost)
		admin.DELETE("/posts/:id", hb.Content.DeletePost)
		admin.GET("/reviews/pending", hb.Content.ListPendingReviews)
		admin.POST("/reviews/:id/approve", hb.Content.ApproveReview)

		admin.POST("/gallery", hb.Gallery.UploadImage)
		admin.DELETE("/gallery/:publicID", hb.Gallery.DeleteImage)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config, logger *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWebhookRoutes(r, hb)

	r.Use(middleware.RateLimit(cfg.MaxRequestsPerMin, logger))
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb, cfg.AdminKey)
}
