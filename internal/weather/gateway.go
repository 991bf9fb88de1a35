package weather

import (
	"context"
	"time"
)

// Gateway abstracts the upstream weather provider. Implementations perform
// the HTTP calls and JSON decoding; the aggregator consumes the raw payloads.
type Gateway interface {
	// CurrentConditions fetches the current-weather snapshot for coords.
	CurrentConditions(ctx context.Context, coords Coordinates) (*CurrentPayload, error)

	// Forecast fetches the multi-day forecast series for coords.
	Forecast(ctx context.Context, coords Coordinates) (*ForecastPayload, error)

	// Geocode resolves a place name to coordinates and a display name.
	// Returns ErrPlaceNotFound when the name resolves to nothing.
	Geocode(ctx context.Context, query string) (Place, error)
}

// CachedReport is one stored snapshot plus its expiry instant. The record
// stays in storage past its expiry until a newer fetch overwrites it;
// freshness checking is the aggregator's job, not the store's.
type CachedReport struct {
	Report Report    `json:"report"`
	Expiry time.Time `json:"expiry"`
}

// SnapshotCache is the contract the single-slot store must satisfy.
type SnapshotCache interface {
	Get() (CachedReport, bool)
	Put(r Report, ttl time.Duration)
}
