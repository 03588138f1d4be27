package report

import (
	"ShopPulse/internal/domain/models"
)

// AggregateRevenue buckets eligible orders' totals into the window's
// pre-seeded bucket sequence. The output is parallel to the window's
// BucketKeys: every seeded key appears exactly once, zero-valued when no
// order fell into it. An order whose key is not in the seeded set is dropped;
// with a consistent window that cannot happen, and the conservation property
// (sum of buckets == sum of eligible totals) holds.
func AggregateRevenue(w Window, eligible []models.Order) models.RevenueSeries {
	buckets := make(map[string]float64, len(w.BucketKeys))
	for _, key := range w.BucketKeys {
		buckets[key] = 0
	}

	for _, o := range eligible {
		key := w.KeyFor(o.CreatedAt)
		if _, ok := buckets[key]; !ok {
			continue
		}
		buckets[key] += o.Total
	}

	points := make([]models.RevenuePoint, 0, len(w.BucketKeys))
	total := 0.0
	for _, key := range w.BucketKeys {
		points = append(points, models.RevenuePoint{Key: key, Revenue: buckets[key]})
		total += buckets[key]
	}

	return models.RevenueSeries{
		Period:      w.Period,
		Granularity: string(w.Granularity),
		Points:      points,
		Total:       total,
	}
}
