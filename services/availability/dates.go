package availability

import (
	"fmt"
	"time"
)

// dayKeyLayout is the canonical YYYY-MM-DD representation of a calendar day.
const dayKeyLayout = "2006-01-02"

// NormalizeDate reduces an arbitrary timestamp to its canonical calendar
// day: the ISO date of the instant, re-hydrated at local noon. Feed
// timestamps arrive as UTC midnights; reading their day through local
// accessors shifts them to the previous day in any western timezone. Going
// through the UTC date first and pinning the result at 12:00 keeps the day
// stable under any zone or DST re-interpretation.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return AtNoon(y, m, d)
}

// AtNoon builds a local-noon timestamp for the given calendar day.
func AtNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// ParseDay parses a strict YYYY-MM-DD string into its canonical noon value.
// Malformed input is an error, never a zero date: a silently-invalid value
// would poison set membership downstream.
func ParseDay(key string) (time.Time, error) {
	t, err := time.Parse(dayKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", key, err)
	}
	return AtNoon(t.Year(), t.Month(), t.Day()), nil
}

// FormatDay renders a canonical day value back to YYYY-MM-DD using local
// calendar accessors, which are safe once the value is pinned to noon.
func FormatDay(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// AddDays moves a canonical day value by n calendar days, re-pinning the
// result at noon so a DST transition inside the range cannot drift the day.
func AddDays(t time.Time, n int) time.Time {
	return AtNoon(t.Year(), t.Month(), t.Day()+n)
}

// WholeDaysBetween counts whole calendar days from one value's day to
// another's. Both arguments are reduced to their calendar day first, so
// partial-day effects never shift the count. Callers pass normalized
// (noon-pinned) values or plain local timestamps; the day is read through
// each value's own calendar accessors.
func WholeDaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
