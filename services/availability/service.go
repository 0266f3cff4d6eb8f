package availability

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"casaherenia/models"
)

// BlockedDates is the serialized query result: per unit, the blocked day
// keys in ascending order.
type BlockedDates map[models.Unit][]string

// AdminBlockedDates separates occupation (feed + reservations) from manual
// closure so the admin calendar can render them in two colors. Containment
// is applied to each subset independently.
type AdminBlockedDates struct {
	Occupied        BlockedDates `json:"occupied"`
	ManuallyBlocked BlockedDates `json:"manually_blocked"`
}

// Service is the read-facing availability aggregate.
type Service interface {
	// BlockedDates merges all three sources under containment. It fails
	// open: a source that cannot be read contributes nothing rather than
	// failing the booking page.
	BlockedDates(ctx context.Context) BlockedDates
	// AdminBlockedDates returns the two-color admin variant.
	AdminBlockedDates(ctx context.Context) AdminBlockedDates
}

// DefaultAvailabilityService fans out to the three sources concurrently
// and merges their contributions.
type DefaultAvailabilityService struct {
	Feed         *FeedSource
	Reservations *ReservationSource
	ManualBlocks *ManualBlockSource
	Logger       *zap.Logger
}

// gather runs the three fetches concurrently; the sources are mutually
// independent. Store-backed sources degrade to empty on error.
func (s *DefaultAvailabilityService) gather(ctx context.Context) (feed, reservations, manual UnitDays) {
	feed = NewUnitDays()
	reservations = NewUnitDays()
	manual = NewUnitDays()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		feed = s.Feed.BlockedDays(ctx)
	}()
	go func() {
		defer wg.Done()
		days, err := s.Reservations.BlockedDays(ctx)
		if err != nil {
			s.Logger.Warn("reservation source degraded to empty", zap.Error(err))
			return
		}
		reservations = days
	}()
	go func() {
		defer wg.Done()
		days, err := s.ManualBlocks.BlockedDays(ctx)
		if err != nil {
			s.Logger.Warn("manual block source degraded to empty", zap.Error(err))
			return
		}
		manual = days
	}()

	wg.Wait()
	return feed, reservations, manual
}

// BlockedDates implements Service.
func (s *DefaultAvailabilityService) BlockedDates(ctx context.Context) BlockedDates {
	feed, reservations, manual := s.gather(ctx)
	return serialize(MergeSources(feed, reservations, manual))
}

// AdminBlockedDates implements Service.
func (s *DefaultAvailabilityService) AdminBlockedDates(ctx context.Context) AdminBlockedDates {
	feed, reservations, manual := s.gather(ctx)
	return AdminBlockedDates{
		Occupied:        serialize(MergeSources(feed, reservations)),
		ManuallyBlocked: serialize(MergeSources(manual)),
	}
}

func serialize(merged UnitDays) BlockedDates {
	out := make(BlockedDates, len(models.AllUnits))
	for _, unit := range models.AllUnits {
		out[unit] = merged[unit].Sorted()
	}
	return out
}
