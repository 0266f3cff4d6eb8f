package availability

import "time"

// EndConvention selects how the final day of a range is treated.
type EndConvention int

const (
	// EndExclusive blocks start..end-1: the end day is the departure day
	// and stays bookable. Standard hospitality semantics for reservations
	// and feed events.
	EndExclusive EndConvention = iota
	// EndInclusive blocks start..end: both boundary days are closed. Used
	// for manual blocks, which mean "the unit is closed these days", not a
	// guest stay.
	EndInclusive
)

// ExpandRange expands a start/end pair into the ordered day keys it blocks.
// An exclusive range with end <= start expands to nothing.
func ExpandRange(start, end time.Time, conv EndConvention) []string {
	startNorm := NormalizeDate(start)
	endNorm := NormalizeDate(end)
	if conv == EndInclusive {
		endNorm = AddDays(endNorm, 1)
	}

	var keys []string
	for cur := startNorm; cur.Before(endNorm); cur = AddDays(cur, 1) {
		keys = append(keys, FormatDay(cur))
	}
	return keys
}

// ExpandRangeKeys expands two YYYY-MM-DD strings. Malformed keys are an
// error so the caller can decide between rejecting and skipping.
func ExpandRangeKeys(startKey, endKey string, conv EndConvention) ([]string, error) {
	start, err := ParseDay(startKey)
	if err != nil {
		return nil, err
	}
	end, err := ParseDay(endKey)
	if err != nil {
		return nil, err
	}
	return ExpandRange(start, end, conv), nil
}
