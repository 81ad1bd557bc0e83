package reservation

import (
	"time"
)

// DateRange is the inclusive [start, end] rental period, date-granular.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrMissingDate
	}
	start = truncateToDay(start)
	end = truncateToDay(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps uses inclusive interval intersection: the other range starts
// inside this one, ends inside this one, or fully contains it.
func (r DateRange) Overlaps(other DateRange) bool {
	startsWithin := !other.start.Before(r.start) && !other.start.After(r.end)
	endsWithin := !other.end.Before(r.start) && !other.end.After(r.end)
	contains := other.start.Before(r.start) && other.end.After(r.end)
	return startsWithin || endsWithin || contains
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
