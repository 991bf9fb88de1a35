package store

import (
	"sync"
	"time"

	"github.com/skydash/weather-pipeline/internal/weather"
)

// SnapshotStore is a concurrency-safe single-slot cache for the last
// normalized weather report. It enforces no freshness policy: Get returns
// whatever is stored, expired or not, and the aggregator decides whether to
// trust it. A Put unconditionally replaces the previous snapshot, including
// one for a different location.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap *weather.CachedReport

	// now is replaceable in tests.
	now func() time.Time
}

// NewSnapshotStore creates an empty SnapshotStore.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{now: time.Now}
}

// Get returns the stored snapshot, if any. The second return value reports
// whether a snapshot exists at all, not whether it is still fresh.
func (s *SnapshotStore) Get() (weather.CachedReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return weather.CachedReport{}, false
	}
	return *s.snap, true
}

// Put stores the report with an expiry of now+ttl, replacing any previous
// snapshot. No merge, no partial update.
func (s *SnapshotStore) Put(r weather.Report, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = &weather.CachedReport{
		Report: r,
		Expiry: s.now().Add(ttl),
	}
}
