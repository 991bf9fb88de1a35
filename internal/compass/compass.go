package compass

import (
	"errors"
	"math"
)

// ErrInvalidBearing is returned for bearings that are not finite numbers.
var ErrInvalidBearing = errors.New("invalid wind bearing")

// labels in clockwise order; each sector spans 22.5 degrees centered on its
// point, so the N sector covers [348.75, 360) and [0, 11.25).
var labels = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// Cardinal maps a wind bearing in degrees to one of 16 compass labels.
// Bearings outside [0, 360) are normalized modulo 360.
func Cardinal(deg float64) (string, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "", ErrInvalidBearing
	}

	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}

	idx := int(math.Floor(d/22.5+0.5)) % 16
	return labels[idx], nil
}
