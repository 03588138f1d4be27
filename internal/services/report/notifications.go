package report

import (
	"fmt"
	"sort"
	"time"

	"ShopPulse/internal/domain/models"
)

// NotificationOptions tunes notification generation.
type NotificationOptions struct {
	Threshold    int           // low-stock threshold; <=0 uses the default
	RecentWindow time.Duration // trailing window for new-order events
	RecentCap    int           // max new-order notifications per pass
}

const (
	defaultRecentWindow = 24 * time.Hour
	defaultRecentCap    = 10
)

// GenerateNotifications derives the alert feed from the snapshot. IDs are a
// pure function of (type, source entity id): recomputing from an unchanged
// snapshot reproduces every id, which is what lets the read-state store
// deduplicate across passes without notifications ever being persisted.
// Ordering is timestamp descending; equal timestamps keep build order
// (stock alerts in product order, then recent orders).
func GenerateNotifications(products []models.Product, orders []models.Order, now time.Time, opts NotificationOptions) []models.Notification {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultLowStockThreshold
	}
	if opts.RecentWindow <= 0 {
		opts.RecentWindow = defaultRecentWindow
	}
	if opts.RecentCap <= 0 {
		opts.RecentCap = defaultRecentCap
	}

	feed := stockAlerts(products, opts.Threshold, now)
	feed = append(feed, recentOrderEvents(orders, now, opts.RecentWindow, opts.RecentCap)...)

	sort.SliceStable(feed, func(a, b int) bool {
		return feed[a].Timestamp.After(feed[b].Timestamp)
	})
	return feed
}

// NotificationID derives the deterministic id for a (type, entity) pair.
func NotificationID(typ, entityID string) string {
	return fmt.Sprintf("%s-%s", typ, entityID)
}

func stockAlerts(products []models.Product, threshold int, now time.Time) []models.Notification {
	alerts := make([]models.Notification, 0)
	for _, p := range products {
		switch ClassifyStock(p.Stock, threshold) {
		case models.StockLevelOut:
			alerts = append(alerts, models.Notification{
				ID:        NotificationID(models.NotificationOutOfStock, p.ID),
				Type:      models.NotificationOutOfStock,
				Severity:  models.SeverityError,
				Message:   fmt.Sprintf("%s is out of stock", p.Name),
				Timestamp: now,
			})
		case models.StockLevelLow:
			alerts = append(alerts, models.Notification{
				ID:        NotificationID(models.NotificationLowStock, p.ID),
				Type:      models.NotificationLowStock,
				Severity:  models.SeverityWarning,
				Message:   fmt.Sprintf("%s is low on stock (%d left)", p.Name, p.Stock),
				Timestamp: now,
			})
		}
	}
	return alerts
}

func recentOrderEvents(orders []models.Order, now time.Time, window time.Duration, limit int) []models.Notification {
	cutoff := now.Add(-window)

	recent := make([]models.Order, 0)
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		if o.CreatedAt.After(cutoff) && !o.CreatedAt.After(now) {
			recent = append(recent, o)
		}
	}

	// Most recent first; keep only the newest limit orders.
	sort.SliceStable(recent, func(a, b int) bool {
		return recent[a].CreatedAt.After(recent[b].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}

	events := make([]models.Notification, 0, len(recent))
	for _, o := range recent {
		events = append(events, models.Notification{
			ID:        NotificationID(models.NotificationNewOrder, o.ID),
			Type:      models.NotificationNewOrder,
			Severity:  models.SeverityInfo,
			Message:   fmt.Sprintf("New order %s received (%.2f)", o.ID, o.Total),
			Timestamp: o.CreatedAt,
		})
	}
	return events
}
