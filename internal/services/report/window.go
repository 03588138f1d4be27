package report

import (
	"time"

	"ShopPulse/pkg/util"
)

// Granularity of a reporting window.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

const (
	dayKeyFormat   = "2006-01-02"
	monthKeyFormat = "2006-01"

	// Requested windows longer than this many days switch to monthly buckets.
	maxDailyWindowDays = 30

	monthlyBucketCount = 12
)

// Window maps a period token to a concrete, pre-seeded bucket sequence.
// Every bucket key appears exactly once; empty periods render as zero
// instead of being omitted.
type Window struct {
	Period      string
	Granularity Granularity
	BucketKeys  []string
	RangeStart  time.Time
	RangeEnd    time.Time
}

// ResolveWindow resolves a period token ("7d", "30d", "3m", "12m") relative
// to now. Unrecognized tokens fall back to the 12-month scheme.
func ResolveWindow(period string, now time.Time) Window {
	days := 0
	switch period {
	case "7d":
		days = 7
	case "30d":
		days = 30
	}

	if days > 0 && days <= maxDailyWindowDays {
		return dailyWindow(period, now, days)
	}
	return monthlyWindow(period, now)
}

func dailyWindow(period string, now time.Time, days int) Window {
	start := util.StartOfDay(now).AddDate(0, 0, -(days - 1))

	keys := make([]string, 0, days)
	for d := 0; d < days; d++ {
		keys = append(keys, start.AddDate(0, 0, d).Format(dayKeyFormat))
	}

	return Window{
		Period:      period,
		Granularity: GranularityDay,
		BucketKeys:  keys,
		RangeStart:  start,
		RangeEnd:    now,
	}
}

func monthlyWindow(period string, now time.Time) Window {
	start := util.StartOfMonth(now).AddDate(0, -(monthlyBucketCount - 1), 0)

	keys := make([]string, 0, monthlyBucketCount)
	for m := 0; m < monthlyBucketCount; m++ {
		keys = append(keys, start.AddDate(0, m, 0).Format(monthKeyFormat))
	}

	return Window{
		Period:      period,
		Granularity: GranularityMonth,
		BucketKeys:  keys,
		RangeStart:  start,
		RangeEnd:    now,
	}
}

// KeyFor computes the bucket key for a timestamp using the window's
// granularity. The same scheme seeds the bucket sequence, so a timestamp
// inside [RangeStart, RangeEnd] always maps onto a seeded key.
func (w Window) KeyFor(t time.Time) string {
	if w.Granularity == GranularityDay {
		return t.Format(dayKeyFormat)
	}
	return t.Format(monthKeyFormat)
}
