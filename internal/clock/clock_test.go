package clock

import (
	"testing"
	"time"
)

// 2024-03-04 12:00:00 UTC, a Monday.
const noon int64 = 1709553600

func TestFormatterUTC(t *testing.T) {
	f := NewFormatter(time.UTC)

	if got := f.Date(noon); got != "Mar 4" {
		t.Errorf("Date = %q, want \"Mar 4\"", got)
	}
	if got := f.Time(noon); got != "12:00 PM" {
		t.Errorf("Time = %q, want \"12:00 PM\"", got)
	}
	if got := f.Weekday(noon); got != "Monday" {
		t.Errorf("Weekday = %q, want Monday", got)
	}
	if got := f.DayKey(noon); got != "2024-03-04" {
		t.Errorf("DayKey = %q, want 2024-03-04", got)
	}
}

func TestFormatterNilLocationDefaultsToUTC(t *testing.T) {
	f := NewFormatter(nil)
	if f.Location() != time.UTC {
		t.Errorf("Location = %v, want UTC", f.Location())
	}
	if got := f.DayKey(noon); got != "2024-03-04" {
		t.Errorf("DayKey = %q, want 2024-03-04", got)
	}
}

func TestFormatterZoneShiftsDayBoundary(t *testing.T) {
	// 20:00 UTC is still March 4 in UTC but already March 5 in UTC+7.
	evening := noon + 8*3600

	utc := NewFormatter(time.UTC)
	if got := utc.DayKey(evening); got != "2024-03-04" {
		t.Errorf("UTC DayKey = %q, want 2024-03-04", got)
	}

	jakarta := NewFormatter(time.FixedZone("UTC+7", 7*3600))
	if got := jakarta.DayKey(evening); got != "2024-03-05" {
		t.Errorf("UTC+7 DayKey = %q, want 2024-03-05", got)
	}
	if got := jakarta.Weekday(evening); got != "Tuesday" {
		t.Errorf("UTC+7 Weekday = %q, want Tuesday", got)
	}
}

func TestFormatterDeterministic(t *testing.T) {
	f := NewFormatter(time.FixedZone("UTC+7", 7*3600))
	for i := 0; i < 3; i++ {
		if got := f.Time(noon); got != "7:00 PM" {
			t.Fatalf("Time = %q, want \"7:00 PM\"", got)
		}
	}
}
