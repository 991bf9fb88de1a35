package store

import (
	"testing"
	"time"

	"github.com/skydash/weather-pipeline/internal/weather"
)

func sampleReport(temp int) weather.Report {
	return weather.Report{
		Current: weather.CurrentConditions{
			ObservedAt: 1709553600,
			Temp:       temp,
			Weather:    []weather.ConditionInfo{{ID: 800, Main: "Clear", Icon: "01d"}},
		},
	}
}

func TestSnapshotStoreEmpty(t *testing.T) {
	s := NewSnapshotStore()
	if _, ok := s.Get(); ok {
		t.Error("empty store reported a snapshot")
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	s := NewSnapshotStore()

	fixed := time.Unix(1709553600, 0)
	s.now = func() time.Time { return fixed }

	s.Put(sampleReport(21), 10*time.Minute)

	snap, ok := s.Get()
	if !ok {
		t.Fatal("snapshot missing after put")
	}
	if snap.Report.Current.Temp != 21 {
		t.Errorf("temp = %d, want 21", snap.Report.Current.Temp)
	}
	if want := fixed.Add(10 * time.Minute); !snap.Expiry.Equal(want) {
		t.Errorf("expiry = %v, want %v", snap.Expiry, want)
	}
}

func TestSnapshotStoreOverwrites(t *testing.T) {
	s := NewSnapshotStore()

	s.Put(sampleReport(21), 10*time.Minute)
	s.Put(sampleReport(30), 10*time.Minute)

	snap, ok := s.Get()
	if !ok {
		t.Fatal("snapshot missing")
	}
	if snap.Report.Current.Temp != 30 {
		t.Errorf("temp = %d, want 30 (last put wins)", snap.Report.Current.Temp)
	}
}

func TestSnapshotStoreKeepsStaleRecord(t *testing.T) {
	s := NewSnapshotStore()

	// Already expired on arrival; the store still hands it out because
	// freshness is the caller's policy, not the store's.
	s.Put(sampleReport(21), -time.Minute)

	snap, ok := s.Get()
	if !ok {
		t.Fatal("stale snapshot was dropped")
	}
	if !snap.Expiry.Before(time.Now()) {
		t.Error("expected an expired snapshot")
	}
}
