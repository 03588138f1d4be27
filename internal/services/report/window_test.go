package report

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)

func TestResolveWindowSevenDays(t *testing.T) {
	w := ResolveWindow("7d", testNow)
	if w.Granularity != GranularityDay {
		t.Fatalf("granularity: got %s", w.Granularity)
	}
	if len(w.BucketKeys) != 7 {
		t.Fatalf("bucket count: got %d", len(w.BucketKeys))
	}
	if w.BucketKeys[0] != "2025-03-09" {
		t.Fatalf("first key: got %s", w.BucketKeys[0])
	}
	if w.BucketKeys[6] != "2025-03-15" {
		t.Fatalf("last key: got %s", w.BucketKeys[6])
	}
	if !w.RangeStart.Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("range start: got %v", w.RangeStart)
	}
}

func TestResolveWindowThirtyDays(t *testing.T) {
	w := ResolveWindow("30d", testNow)
	if w.Granularity != GranularityDay {
		t.Fatalf("granularity: got %s", w.Granularity)
	}
	if len(w.BucketKeys) != 30 {
		t.Fatalf("bucket count: got %d", len(w.BucketKeys))
	}
}

func TestResolveWindowMonthlyBeyondThirtyDays(t *testing.T) {
	// Any window beyond 30 days switches to exactly 12 monthly buckets.
	for _, period := range []string{"3m", "12m"} {
		w := ResolveWindow(period, testNow)
		if w.Granularity != GranularityMonth {
			t.Fatalf("%s granularity: got %s", period, w.Granularity)
		}
		if len(w.BucketKeys) != 12 {
			t.Fatalf("%s bucket count: got %d", period, len(w.BucketKeys))
		}
		if w.BucketKeys[11] != "2025-03" {
			t.Fatalf("%s last key: got %s", period, w.BucketKeys[11])
		}
		if w.BucketKeys[0] != "2024-04" {
			t.Fatalf("%s first key: got %s", period, w.BucketKeys[0])
		}
	}
}

func TestResolveWindowUnknownTokenFallsBack(t *testing.T) {
	for _, period := range []string{"", "90d", "nonsense"} {
		w := ResolveWindow(period, testNow)
		if w.Granularity != GranularityMonth || len(w.BucketKeys) != 12 {
			t.Fatalf("%q: expected 12-month fallback, got %s/%d", period, w.Granularity, len(w.BucketKeys))
		}
	}
}

func TestWindowKeysUnique(t *testing.T) {
	w := ResolveWindow("30d", testNow)
	seen := make(map[string]bool)
	for _, k := range w.BucketKeys {
		if seen[k] {
			t.Fatalf("duplicate bucket key %s", k)
		}
		seen[k] = true
	}
}

func TestKeyForMatchesSeededKeys(t *testing.T) {
	w := ResolveWindow("7d", testNow)
	key := w.KeyFor(testNow.Add(-48 * time.Hour))
	found := false
	for _, k := range w.BucketKeys {
		if k == key {
			found = true
		}
	}
	if !found {
		t.Fatalf("key %s not in seeded set %v", key, w.BucketKeys)
	}
}
