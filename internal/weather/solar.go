package weather

// SolarEventKind names the next solar boundary for display purposes.
type SolarEventKind string

const (
	SolarSunrise SolarEventKind = "sunrise"
	SolarSunset  SolarEventKind = "sunset"
)

// SolarEvent is the next sunrise or sunset relative to the observation time.
type SolarEvent struct {
	Kind SolarEventKind `json:"kind"`
	At   int64          `json:"at"`
}

// NextSolarEvent windows the observation time against today's solar
// boundaries: before sunrise the upcoming event is today's sunrise, during
// the day it is today's sunset, after sunset it is the next day's sunrise.
// When no second daily bucket exists the sunrise is projected 24 hours out.
func NextSolarEvent(cur CurrentConditions, daily []DailySummary) SolarEvent {
	switch {
	case cur.ObservedAt < cur.Sunrise:
		return SolarEvent{Kind: SolarSunrise, At: cur.Sunrise}
	case cur.ObservedAt < cur.Sunset:
		return SolarEvent{Kind: SolarSunset, At: cur.Sunset}
	default:
		if len(daily) > 1 {
			return SolarEvent{Kind: SolarSunrise, At: daily[1].Sunrise}
		}
		return SolarEvent{Kind: SolarSunrise, At: cur.Sunrise + 24*60*60}
	}
}
