package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"casaherenia/config"
	"casaherenia/cron"
	"casaherenia/database"
	blockRepo "casaherenia/database/repository/block"
	bookingRepo "casaherenia/database/repository/booking"
	contentRepo "casaherenia/database/repository/content"
	taxiRepo "casaherenia/database/repository/taxi"
	"casaherenia/handlers"
	"casaherenia/models"
	"casaherenia/routes"
	"casaherenia/services/availability"
	"casaherenia/services/booking"
	"casaherenia/services/concierge"
	"casaherenia/services/content"
	"casaherenia/services/notification"
	"casaherenia/services/storage"
	"casaherenia/services/taxi"
	"casaherenia/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	ctx := context.Background()

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("could not connect to mongodb", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	cacheClient, err := utils.NewCacheClient(cfg)
	if err != nil {
		// The feed cache is an optimization; without it every request
		// hits the external calendars directly.
		logger.Warn("redis unavailable, feed caching disabled", zap.Error(err))
		cacheClient = nil
	}

	fcmClient, err := utils.NewFCMClient(ctx, cfg)
	if err != nil {
		logger.Warn("firebase messaging unavailable, push disabled", zap.Error(err))
	}

	stripe.Key = cfg.StripeKey

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo(mongoClient, cfg.DatabaseName)
	blocks := blockRepo.NewMongoBlockRepo(mongoClient, cfg.DatabaseName)
	taxis := taxiRepo.NewMongoTaxiRepo(mongoClient, cfg.DatabaseName)
	contents := contentRepo.NewMongoContentRepo(mongoClient, cfg.DatabaseName)

	// Services.
	notifier := &notification.DefaultNotificationService{
		Email:         notification.NewEmailSender(cfg.SendgridAPIKey, cfg.EmailFrom, cfg.EmailOwner, logger),
		FCM:           fcmClient,
		OwnerFCMToken: cfg.OwnerFCMToken,
		Logger:        logger,
	}

	feedURLs := make(map[models.Unit]string, len(models.AllUnits))
	for _, unit := range models.AllUnits {
		feedURLs[unit] = cfg.FeedURL(string(unit))
	}
	availabilitySvc := &availability.DefaultAvailabilityService{
		Feed:         availability.NewFeedSource(feedURLs, cacheClient, logger),
		Reservations: &availability.ReservationSource{Repo: bookings, Logger: logger},
		ManualBlocks: &availability.ManualBlockSource{Repo: blocks, Logger: logger},
		Logger:       logger,
	}

	exportSvc := &availability.DefaultCalendarExportService{
		Bookings: bookings,
		Blocks:   blocks,
	}

	blockSvc := &availability.ManualBlockService{
		Repo:   blocks,
		Logger: logger,
	}

	bookingSvc := &booking.DefaultBookingService{
		Repo:         bookings,
		Availability: availabilitySvc,
		Notifier:     notifier,
		Logger:       logger,
		SiteURL:      cfg.SiteURL,
	}

	taxiSvc := &taxi.Service{
		Repo:     taxis,
		Notifier: notifier,
		Logger:   logger,
	}

	contentSvc := &content.Service{
		Repo:   contents,
		Logger: logger,
	}

	externalReviews := content.NewExternalReviewService(
		cfg.RapidAPIKey, cfg.RapidAPIHost, cfg.TripAdvisorLocationID, cacheClient, logger)

	conciergeSvc, err := concierge.NewService(ctx, cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Fatal("could not initialize concierge", zap.Error(err))
	}

	gallerySvc, err := storage.NewCloudinaryStorage(cfg, logger)
	if err != nil {
		logger.Fatal("could not initialize gallery storage", zap.Error(err))
	}

	// Background survey pipeline.
	surveyWorker := cron.NewSurveyWorker(cfg, bookings, notifier, logger)
	surveyWorker.Start()

	// Store health monitor behind /api/health.
	monitor := &utils.HealthMonitor{}
	monitor.Start(cacheClient, mongoClient)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))

	handlerBundle := &handlers.HandlerBundle{
		Availability: &handlers.AvailabilityHandler{Service: availabilitySvc},
		ICal:         &handlers.ICalHandler{Export: exportSvc},
		Booking:      &handlers.BookingHandler{Service: bookingSvc},
		Webhook: &handlers.StripeWebhookHandler{
			Service:        bookingSvc,
			EndpointSecret: cfg.StripeWebhookSecret,
			Logger:         logger,
		},
		Taxi:    &handlers.TaxiHandler{Service: taxiSvc},
		Blocks:  &handlers.BlockHandler{Service: blockSvc},
		Chat:    &handlers.ChatHandler{Service: conciergeSvc},
		Contact: &handlers.ContactHandler{Notifier: notifier},
		Content: &handlers.ContentHandler{Service: contentSvc, External: externalReviews},
		Gallery: &handlers.GalleryHandler{Storage: gallerySvc},
		Health:  &handlers.HealthHandler{Monitor: monitor},
	}

	routes.RegisterRoutes(router, handlerBundle, cfg, logger)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
