package domain

import (
	"fmt"
	"time"
)

// DateProvider is satisfied by timestamp-like values imported from the
// legacy document store, which expose their instant through a ToDate
// accessor instead of being a native time.
type DateProvider interface {
	ToDate() time.Time
}

// dateLayouts are tried in order for string-encoded dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate resolves the mixed date representations found in raw
// documents: native times, ToDate-style timestamp objects, ISO and
// RFC3339 strings, and epoch numbers (seconds or milliseconds). It never
// panics; an unrecognized value wraps ErrUnparseableDate.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("%w: missing value", ErrUnparseableDate)
	case time.Time:
		return d.UTC(), nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("%w: missing value", ErrUnparseableDate)
		}
		return d.UTC(), nil
	case DateProvider:
		return d.ToDate().UTC(), nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, d)
	case float64:
		return epochToTime(int64(d)), nil
	case int64:
		return epochToTime(d), nil
	case int:
		return epochToTime(int64(d)), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrUnparseableDate, v)
	}
}

// epochToTime interprets an epoch number as milliseconds when it is too
// large to be a plausible number of seconds.
func epochToTime(n int64) time.Time {
	const msThreshold = 1e11 // ~year 5138 in seconds, ~1973 in millis
	if n >= msThreshold {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

// StartOfNextDay returns midnight UTC of the day after t. The outstanding
// summary uses it as its exclusive cutoff so that activity on the as-of
// day itself is included.
func StartOfNextDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
