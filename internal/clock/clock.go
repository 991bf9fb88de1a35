package clock

import "time"

// Formatter renders Unix timestamps as display strings in a fixed timezone.
// The zone is injected so that aggregation output stays deterministic in
// tests; a nil location falls back to UTC.
type Formatter struct {
	loc *time.Location
}

// NewFormatter creates a Formatter for the given timezone.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

func (f *Formatter) at(ts int64) time.Time {
	return time.Unix(ts, 0).In(f.loc)
}

// Date returns a short display date, e.g. "Sep 1".
func (f *Formatter) Date(ts int64) string {
	return f.at(ts).Format("Jan 2")
}

// Time returns a clock time, e.g. "6:05 AM".
func (f *Formatter) Time(ts int64) string {
	return f.at(ts).Format("3:04 PM")
}

// Weekday returns the full weekday name, e.g. "Monday".
func (f *Formatter) Weekday(ts int64) string {
	return f.at(ts).Weekday().String()
}

// DayKey returns the calendar-date bucket key for daily grouping.
// Two timestamps on the same calendar day in the formatter's zone
// always produce the same key.
func (f *Formatter) DayKey(ts int64) string {
	return f.at(ts).Format("2006-01-02")
}

// Location exposes the configured timezone.
func (f *Formatter) Location() *time.Location {
	return f.loc
}
