package weather

import "testing"

func TestNextSolarEvent(t *testing.T) {
	cur := CurrentConditions{
		Sunrise: baseDt + 6*3600,
		Sunset:  baseDt + 18*3600,
	}
	daily := []DailySummary{
		{Sunrise: cur.Sunrise, Sunset: cur.Sunset},
		{Sunrise: cur.Sunrise, Sunset: cur.Sunset},
	}

	// Before dawn the next event is today's sunrise.
	cur.ObservedAt = baseDt + 4*3600
	if ev := NextSolarEvent(cur, daily); ev.Kind != SolarSunrise || ev.At != cur.Sunrise {
		t.Errorf("pre-dawn: %+v", ev)
	}

	// During the day the next event is today's sunset.
	cur.ObservedAt = baseDt + 12*3600
	if ev := NextSolarEvent(cur, daily); ev.Kind != SolarSunset || ev.At != cur.Sunset {
		t.Errorf("daytime: %+v", ev)
	}

	// Exactly at sunrise counts as daytime.
	cur.ObservedAt = cur.Sunrise
	if ev := NextSolarEvent(cur, daily); ev.Kind != SolarSunset {
		t.Errorf("at sunrise: %+v", ev)
	}

	// After sunset the next event is the following day's sunrise.
	cur.ObservedAt = baseDt + 20*3600
	if ev := NextSolarEvent(cur, daily); ev.Kind != SolarSunrise || ev.At != daily[1].Sunrise {
		t.Errorf("after sunset: %+v", ev)
	}
}

func TestNextSolarEventWithoutSecondDay(t *testing.T) {
	cur := CurrentConditions{
		ObservedAt: baseDt + 20*3600,
		Sunrise:    baseDt + 6*3600,
		Sunset:     baseDt + 18*3600,
	}

	ev := NextSolarEvent(cur, nil)
	if ev.Kind != SolarSunrise {
		t.Fatalf("kind = %q, want sunrise", ev.Kind)
	}
	if want := cur.Sunrise + 24*3600; ev.At != want {
		t.Errorf("at = %d, want %d (projected 24h out)", ev.At, want)
	}
}
