package availability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	blockRepo "casaherenia/database/repository/block"
	bookingRepo "casaherenia/database/repository/booking"
	"casaherenia/models"
)

const (
	feedCacheKeyPrefix = "feed:ics:"
	feedCacheTTL       = time.Hour
	feedFetchTimeout   = 10 * time.Second
)

// FeedSource reads the external calendar feed of each unit and expands its
// events into blocked days. Feeds are optional per unit, and a broken feed
// degrades to an empty contribution: the booking page must render even when
// the channel partner is down.
type FeedSource struct {
	urls   map[models.Unit]string
	client *http.Client
	cache  *redis.Client // nil disables caching
	logger *zap.Logger
}

// NewFeedSource builds a FeedSource from per-unit feed URLs. Units missing
// from urls (or mapped to "") have no feed configured.
func NewFeedSource(urls map[models.Unit]string, cache *redis.Client, logger *zap.Logger) *FeedSource {
	return &FeedSource{
		urls:   urls,
		client: &http.Client{Timeout: feedFetchTimeout},
		cache:  cache,
		logger: logger,
	}
}

// BlockedDays fetches and parses all configured feeds concurrently. It
// never fails: each unit independently degrades to an empty set on fetch or
// parse problems, with the cause logged.
func (s *FeedSource) BlockedDays(ctx context.Context) UnitDays {
	result := NewUnitDays()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, unit := range models.AllUnits {
		url := s.urls[unit]
		if url == "" {
			// Not configured is a supported state, distinct from a broken
			// feed; log at debug so the distinction stays observable.
			s.logger.Debug("no calendar feed configured", zap.String("unit", string(unit)))
			continue
		}

		wg.Add(1)
		go func(unit models.Unit, url string) {
			defer wg.Done()
			days, err := s.fetchUnit(ctx, unit, url)
			if err != nil {
				s.logger.Warn("calendar feed degraded to empty",
					zap.String("unit", string(unit)), zap.Error(err))
				return
			}
			mu.Lock()
			result[unit].AddSet(days)
			mu.Unlock()
		}(unit, url)
	}
	wg.Wait()

	return result
}

func (s *FeedSource) fetchUnit(ctx context.Context, unit models.Unit, url string) (DaySet, error) {
	body, err := s.fetchBody(ctx, unit, url)
	if err != nil {
		return nil, err
	}

	cal, err := ics.ParseCalendar(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	days := DaySet{}
	events := 0
	for _, ev := range cal.Events() {
		start, end, err := eventInterval(ev)
		if err != nil {
			s.logger.Warn("skipping feed event without usable interval",
				zap.String("unit", string(unit)), zap.Error(err))
			continue
		}
		events++
		days.AddAll(ExpandRange(start, end, EndExclusive))
	}

	s.logger.Info("calendar feed fetched",
		zap.String("unit", string(unit)),
		zap.Int("events", events),
		zap.Int("blockedDays", len(days)))
	return days, nil
}

// fetchBody returns the raw ICS text, via the cache when fresh. Staleness
// up to the TTL is acceptable; the public calendar tolerates an hour.
func (s *FeedSource) fetchBody(ctx context.Context, unit models.Unit, url string) (string, error) {
	cacheKey := feedCacheKeyPrefix + string(unit)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build feed request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch feed: HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read feed body: %w", err)
	}
	body := string(raw)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, body, feedCacheTTL).Err(); err != nil {
			s.logger.Warn("feed cache write failed", zap.Error(err))
		}
	}
	return body, nil
}

// eventInterval extracts a usable [start, end) pair from a feed event,
// accepting both timed and all-day (VALUE=DATE) forms.
func eventInterval(ev *ics.VEvent) (time.Time, time.Time, error) {
	start, err := ev.GetStartAt()
	if err != nil {
		if start, err = ev.GetAllDayStartAt(); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("event start: %w", err)
		}
	}
	end, err := ev.GetEndAt()
	if err != nil {
		if end, err = ev.GetAllDayEndAt(); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("event end: %w", err)
		}
	}
	return start, end, nil
}

// ReservationSource expands confirmed reservations into blocked days.
// Cancelled reservations stop blocking on the next query simply by falling
// out of the status filter.
type ReservationSource struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// BlockedDays returns per-unit days blocked by confirmed reservations. The
// error reports an unreachable store; a malformed row is skipped with a
// log, never aborting the whole aggregation.
func (s *ReservationSource) BlockedDays(ctx context.Context) (UnitDays, error) {
	bookings, err := s.Repo.Confirmed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load confirmed reservations: %w", err)
	}

	result := NewUnitDays()
	for _, b := range bookings {
		if !b.RoomID.Valid() {
			s.Logger.Warn("skipping reservation with unknown unit",
				zap.String("booking", b.ID), zap.String("unit", string(b.RoomID)))
			continue
		}
		keys, err := ExpandRangeKeys(b.CheckIn, b.CheckOut, EndExclusive)
		if err != nil {
			s.Logger.Warn("skipping reservation with malformed dates",
				zap.String("booking", b.ID), zap.Error(err))
			continue
		}
		// check_out <= check_in expands to nothing; upstream data may be
		// malformed and must not break the calendar.
		result[b.RoomID].AddAll(keys)
	}
	return result, nil
}

// ManualBlockSource expands admin-created blocks into blocked days using
// the inclusive-end convention.
type ManualBlockSource struct {
	Repo   blockRepo.BlockRepository
	Logger *zap.Logger
}

// BlockedDays returns per-unit days closed by manual blocks.
func (s *ManualBlockSource) BlockedDays(ctx context.Context) (UnitDays, error) {
	blocks, err := s.Repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load manual blocks: %w", err)
	}

	result := NewUnitDays()
	for _, bl := range blocks {
		if !bl.RoomID.Valid() {
			s.Logger.Warn("skipping manual block with unknown unit",
				zap.String("block", bl.BlockID), zap.String("unit", string(bl.RoomID)))
			continue
		}
		keys, err := ExpandRangeKeys(bl.StartDate, bl.EndDate, EndInclusive)
		if err != nil {
			s.Logger.Warn("skipping manual block with malformed dates",
				zap.String("block", bl.BlockID), zap.Error(err))
			continue
		}
		result[bl.RoomID].AddAll(keys)
	}
	return result, nil
}
