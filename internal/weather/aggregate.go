package weather

import (
	"fmt"
	"math"

	"github.com/skydash/weather-pipeline/internal/clock"
)

const (
	// maxHourlySamples caps the re-sampled hourly series.
	maxHourlySamples = 48

	// maxDailySummaries caps the daily series.
	maxDailySummaries = 7

	// defaultVisibilityMeters substitutes for forecast entries that omit
	// visibility.
	defaultVisibilityMeters = 10000
)

// dayBucket accumulates one calendar day of forecast samples while folding
// the temperature envelope. Min/max widen monotonically: the first sample
// seeds both bounds, later samples only extend them.
type dayBucket struct {
	first ForecastEntry
	minT  float64
	maxT  float64
}

// BuildReport normalizes the two raw upstream payloads into a unified Report.
// It is pure: the same payloads and formatter always produce the same model.
// Aggregation is all-or-nothing; a payload missing required fields fails the
// whole build with ErrMalformedPayload.
func BuildReport(cur *CurrentPayload, fc *ForecastPayload, fmtr *clock.Formatter) (Report, error) {
	if err := validateCurrent(cur); err != nil {
		return Report{}, err
	}
	if err := validateForecast(fc); err != nil {
		return Report{}, err
	}

	report := Report{
		Current: CurrentConditions{
			ObservedAt: cur.Dt,
			Sunrise:    cur.Sys.Sunrise,
			Sunset:     cur.Sys.Sunset,
			Temp:       round(cur.Main.Temp),
			FeelsLike:  round(cur.Main.FeelsLike),
			Pressure:   cur.Main.Pressure,
			Humidity:   cur.Main.Humidity,
			Clouds:     cur.Clouds.All,
			Visibility: cur.Visibility,
			WindSpeed:  cur.Wind.Speed,
			WindDeg:    cur.Wind.Deg,
			Weather:    cur.Weather,
			Rain:       cur.Rain,
		},
	}

	// Hourly series: first 48 entries, mapped 1:1 in order.
	n := len(fc.List)
	if n > maxHourlySamples {
		n = maxHourlySamples
	}
	report.Hourly = make([]HourlySample, 0, n)
	for _, e := range fc.List[:n] {
		visibility := e.Visibility
		if visibility == 0 {
			visibility = defaultVisibilityMeters
		}
		report.Hourly = append(report.Hourly, HourlySample{
			ObservedAt: e.Dt,
			Temp:       round(e.Main.Temp),
			FeelsLike:  round(e.Main.FeelsLike),
			Pressure:   e.Main.Pressure,
			Humidity:   e.Main.Humidity,
			Clouds:     e.Clouds.All,
			Visibility: visibility,
			WindSpeed:  e.Wind.Speed,
			WindDeg:    e.Wind.Deg,
			Weather:    e.Weather,
			Pop:        e.Pop,
			Rain:       e.Rain,
		})
	}

	// Daily series: group the FULL forecast list by calendar date, in
	// first-seen order, then keep the first 7 groups.
	buckets := make(map[string]*dayBucket)
	var order []string
	for _, e := range fc.List {
		key := fmtr.DayKey(e.Dt)
		b, ok := buckets[key]
		if !ok {
			buckets[key] = &dayBucket{
				first: e,
				minT:  e.Main.Temp,
				maxT:  e.Main.Temp,
			}
			order = append(order, key)
			continue
		}
		if e.Main.Temp < b.minT {
			b.minT = e.Main.Temp
		}
		if e.Main.Temp > b.maxT {
			b.maxT = e.Main.Temp
		}
	}

	if len(order) > maxDailySummaries {
		order = order[:maxDailySummaries]
	}

	report.Daily = make([]DailySummary, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		report.Daily = append(report.Daily, DailySummary{
			ObservedAt: b.first.Dt,
			// The coarse forecast carries no per-day solar times, so
			// today's sunrise/sunset repeat across every bucket.
			Sunrise:  cur.Sys.Sunrise,
			Sunset:   cur.Sys.Sunset,
			Temp:     TempRange{Min: round(b.minT), Max: round(b.maxT)},
			Humidity: b.first.Main.Humidity,
			Weather:  b.first.Weather,
			Pop:      b.first.Pop,
			Date:     fmtr.Date(b.first.Dt),
			Weekday:  fmtr.Weekday(b.first.Dt),
		})
	}

	return report, nil
}

func validateCurrent(cur *CurrentPayload) error {
	switch {
	case cur == nil:
		return fmt.Errorf("%w: empty current-conditions response", ErrMalformedPayload)
	case cur.Main == nil:
		return fmt.Errorf("%w: current-conditions missing main", ErrMalformedPayload)
	case cur.Wind == nil:
		return fmt.Errorf("%w: current-conditions missing wind", ErrMalformedPayload)
	case cur.Clouds == nil:
		return fmt.Errorf("%w: current-conditions missing clouds", ErrMalformedPayload)
	case cur.Sys == nil:
		return fmt.Errorf("%w: current-conditions missing sys", ErrMalformedPayload)
	case len(cur.Weather) == 0:
		return fmt.Errorf("%w: current-conditions missing weather", ErrMalformedPayload)
	}
	return nil
}

func validateForecast(fc *ForecastPayload) error {
	if fc == nil {
		return fmt.Errorf("%w: empty forecast response", ErrMalformedPayload)
	}
	for i, e := range fc.List {
		switch {
		case e.Main == nil:
			return fmt.Errorf("%w: forecast entry %d missing main", ErrMalformedPayload, i)
		case e.Wind == nil:
			return fmt.Errorf("%w: forecast entry %d missing wind", ErrMalformedPayload, i)
		case e.Clouds == nil:
			return fmt.Errorf("%w: forecast entry %d missing clouds", ErrMalformedPayload, i)
		case len(e.Weather) == 0:
			return fmt.Errorf("%w: forecast entry %d missing weather", ErrMalformedPayload, i)
		}
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
