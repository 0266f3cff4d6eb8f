package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"

	blockRepo "casaherenia/database/repository/block"
	bookingRepo "casaherenia/database/repository/booking"
	"casaherenia/models"
)

var (
	// ErrUnknownCalendarSlug marks an export request for a slug outside
	// room-1 / room-2 / full-villa.
	ErrUnknownCalendarSlug = errors.New("unknown calendar: use room-1, room-2 or full-villa")
	// ErrCalendarUnavailable marks a backing-store failure. The consumer
	// is an automated channel manager; serving it an empty calendar when
	// the truth is unknown would read as "fully open".
	ErrCalendarUnavailable = errors.New("calendar temporarily unavailable")
)

// CalendarExportService produces the outbound ICS feed per unit slug. Only
// confirmed reservations and manual blocks are exported; the inbound
// external feed is deliberately excluded, since re-exporting it would echo
// the channel partner's own data back at it.
type CalendarExportService interface {
	Export(ctx context.Context, slug string) (string, error)
}

// DefaultCalendarExportService reads the two owned sources directly.
type DefaultCalendarExportService struct {
	Bookings bookingRepo.BookingRepository
	Blocks   blockRepo.BlockRepository
}

// Export implements CalendarExportService.
func (s *DefaultCalendarExportService) Export(ctx context.Context, slug string) (string, error) {
	units, ok := models.UnitsForCalendarSlug(strings.ToLower(strings.TrimSpace(slug)))
	if !ok {
		return "", ErrUnknownCalendarSlug
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Casa Herenia//Availability//EN")
	cal.SetName("Availability Calendar")

	bookings, err := s.Bookings.ConfirmedForUnits(ctx, units)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	for _, b := range bookings {
		start, err := ParseDay(b.CheckIn)
		if err != nil {
			continue
		}
		end, err := ParseDay(b.CheckOut)
		if err != nil {
			continue
		}
		ev := cal.AddEvent(b.ID + "@casaherenia")
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(end)
		ev.SetSummary("RESERVED")
	}

	blocks, err := s.Blocks.ForUnits(ctx, units)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	for _, bl := range blocks {
		start, err := ParseDay(bl.StartDate)
		if err != nil {
			continue
		}
		endInclusive, err := ParseDay(bl.EndDate)
		if err != nil {
			continue
		}
		// Calendar events are exclusive-end; an inclusive block through
		// the 12th becomes an event ending on the 13th.
		ev := cal.AddEvent(bl.BlockID + "@casaherenia")
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(AddDays(endInclusive, 1))
		ev.SetSummary("CLOSED")
	}

	return cal.Serialize(), nil
}
