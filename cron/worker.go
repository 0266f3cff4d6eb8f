package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"casaherenia/config"
	bookingRepo "casaherenia/database/repository/booking"
	"casaherenia/services/availability"
	"casaherenia/services/notification"
)

const TypeSurveySend = "survey:send"

// SurveyWorker runs the post-stay survey pipeline: a scheduler enqueues a
// daily task, and the worker mails an invite to every guest who checked
// out the previous day.
type SurveyWorker struct {
	Bookings bookingRepo.BookingRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
	SiteURL  string

	redisOpts asynq.RedisClientOpt
}

// NewSurveyWorker wires the worker against the queue Redis database.
func NewSurveyWorker(cfg config.Config, bookings bookingRepo.BookingRepository, notifier notification.NotificationService, logger *zap.Logger) *SurveyWorker {
	return &SurveyWorker{
		Bookings: bookings,
		Notifier: notifier,
		Logger:   logger,
		SiteURL:  cfg.SiteURL,
		redisOpts: asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		},
	}
}

// Start launches the scheduler and the worker in the background. Morning
// local time, after every checkout has actually happened.
func (w *SurveyWorker) Start() {
	scheduler := asynq.NewScheduler(w.redisOpts, &asynq.SchedulerOpts{
		Location: time.Local,
	})
	if _, err := scheduler.Register("0 9 * * *", asynq.NewTask(TypeSurveySend, nil)); err != nil {
		w.Logger.Error("could not register survey schedule", zap.Error(err))
		return
	}

	srv := asynq.NewServer(w.redisOpts, asynq.Config{
		Concurrency: 2,
		Queues:      map[string]int{"default": 1},
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSurveySend, w.handleSurveyTask)

	go func() {
		if err := scheduler.Run(); err != nil {
			w.Logger.Error("survey scheduler stopped", zap.Error(err))
		}
	}()
	go func() {
		w.Logger.Info("survey worker starting")
		if err := srv.Run(mux); err != nil {
			w.Logger.Error("survey worker stopped", zap.Error(err))
		}
	}()
}

// handleSurveyTask invites everyone who checked out yesterday. Each guest
// is marked before the next is processed, so a crash mid-batch cannot
// double-mail the already-invited ones on retry.
func (w *SurveyWorker) handleSurveyTask(ctx context.Context, _ *asynq.Task) error {
	yesterday := availability.FormatDay(availability.AddDays(availability.NormalizeDate(time.Now()), -1))

	bookings, err := w.Bookings.CheckedOutOn(ctx, yesterday)
	if err != nil {
		w.Logger.Error("could not load checkouts for survey", zap.String("day", yesterday), zap.Error(err))
		return err
	}

	for _, b := range bookings {
		surveyURL := w.SiteURL + "/survey?booking=" + b.ID
		w.Notifier.SurveyInvite(ctx, b, surveyURL)
		if err := w.Bookings.MarkSurveySent(ctx, b.ID, time.Now()); err != nil {
			w.Logger.Error("could not mark survey sent",
				zap.String("booking", b.ID), zap.Error(err))
			continue
		}
		w.Logger.Info("survey invite sent", zap.String("booking", b.ID))
	}
	return nil
}
