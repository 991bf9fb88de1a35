package weather

import (
	"context"
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/skydash/weather-pipeline/internal/clock"
)

// DefaultCacheTTL is how long a stored snapshot stays fresh unless the
// service is configured otherwise.
const DefaultCacheTTL = 10 * time.Minute

// Service is the forecast aggregator: it owns the normalization pipeline and
// is the only writer of the cache slot.
type Service struct {
	gateway Gateway
	cache   SnapshotCache
	fmtr    *clock.Formatter
	ttl     time.Duration

	// generation numbers in-flight fetches; a fetch that has been
	// superseded by a newer one must not overwrite the cache slot.
	// cacheMu serializes the generation check with the write so a
	// still-newer fetch cannot slip its write in between them.
	generation *atomic.Int64
	cacheMu    sync.Mutex

	// now is replaceable in tests.
	now func() time.Time
}

// NewService creates a Service. A nil formatter defaults to UTC, a
// non-positive ttl falls back to DefaultCacheTTL.
func NewService(gateway Gateway, cache SnapshotCache, fmtr *clock.Formatter, ttl time.Duration) *Service {
	if fmtr == nil {
		fmtr = clock.NewFormatter(nil)
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		gateway:    gateway,
		cache:      cache,
		fmtr:       fmtr,
		ttl:        ttl,
		generation: atomic.NewInt64(0),
		now:        time.Now,
	}
}

// Fetch returns the normalized weather model for coords.
//
// With useCache set, a stored snapshot whose expiry has not passed is
// returned without any network call. Otherwise both upstream requests are
// issued concurrently; if either fails the whole call fails and any cached
// data is left untouched. Every successful fetch overwrites the cache slot,
// so an explicit useCache=false search still repopulates it; useCache only
// governs the read side.
func (s *Service) Fetch(ctx context.Context, coords Coordinates, useCache bool) (Report, error) {
	if useCache && s.cache != nil {
		if snap, ok := s.cache.Get(); ok && s.now().Before(snap.Expiry) {
			return snap.Report, nil
		}
	}

	gen := s.generation.Inc()

	var (
		wg     sync.WaitGroup
		cur    *CurrentPayload
		fc     *ForecastPayload
		curErr error
		fcErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cur, curErr = s.gateway.CurrentConditions(ctx, coords)
	}()
	go func() {
		defer wg.Done()
		fc, fcErr = s.gateway.Forecast(ctx, coords)
	}()
	wg.Wait()

	if curErr != nil {
		return Report{}, newFetchError(curErr)
	}
	if fcErr != nil {
		return Report{}, newFetchError(fcErr)
	}

	report, err := BuildReport(cur, fc, s.fmtr)
	if err != nil {
		return Report{}, newFetchError(err)
	}

	if s.cache != nil {
		s.cacheMu.Lock()
		if s.generation.Load() == gen {
			s.cache.Put(report, s.ttl)
		} else {
			log.Printf("weather: fetch superseded; skipping cache write")
		}
		s.cacheMu.Unlock()
	}

	return report, nil
}

// Search resolves a place name and fetches fresh weather for it. Searches
// are user-driven location switches, so the cache read is bypassed; the
// result still lands in the slot as the new "last viewed place".
func (s *Service) Search(ctx context.Context, query string) (Place, Report, error) {
	place, err := s.gateway.Geocode(ctx, query)
	if err != nil {
		return Place{}, Report{}, err
	}

	report, err := s.Fetch(ctx, place.Coordinates, false)
	if err != nil {
		return Place{}, Report{}, err
	}
	return place, report, nil
}

// Formatter exposes the service's display formatter for presentation layers.
func (s *Service) Formatter() *clock.Formatter {
	return s.fmtr
}
