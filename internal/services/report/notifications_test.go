package report

import (
	"testing"
	"time"

	"ShopPulse/internal/domain/models"
)

func TestGenerateNotificationsStockAlerts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Empty", Stock: 0},
		{ID: "p2", Name: "Scarce", Stock: 5},
		{ID: "p3", Name: "Plenty", Stock: 20},
	}

	got := GenerateNotifications(products, nil, testNow, NotificationOptions{Threshold: 10})
	if len(got) != 2 {
		t.Fatalf("len: got %d", len(got))
	}

	byID := map[string]models.Notification{}
	for _, n := range got {
		byID[n.ID] = n
	}

	out, ok := byID["out-of-stock-alert-p1"]
	if !ok || out.Severity != models.SeverityError {
		t.Fatalf("out-of-stock alert: %+v", out)
	}
	low, ok := byID["low-stock-alert-p2"]
	if !ok || low.Severity != models.SeverityWarning {
		t.Fatalf("low-stock alert: %+v", low)
	}
	if _, ok := byID["low-stock-alert-p3"]; ok {
		t.Fatalf("p3 should not alert")
	}
}

func TestGenerateNotificationsRecentOrders(t *testing.T) {
	orders := []models.Order{
		{ID: "new", CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "old", CreatedAt: testNow.Add(-30 * time.Hour)},
		{ID: "nodate"},
	}

	got := GenerateNotifications(nil, orders, testNow, NotificationOptions{})
	if len(got) != 1 {
		t.Fatalf("len: got %d (%+v)", len(got), got)
	}
	n := got[0]
	if n.ID != "new-order-new" || n.Severity != models.SeverityInfo || n.Type != models.NotificationNewOrder {
		t.Fatalf("unexpected %+v", n)
	}
	if !n.Timestamp.Equal(testNow.Add(-2 * time.Hour)) {
		t.Fatalf("timestamp: %v", n.Timestamp)
	}
}

func TestGenerateNotificationsRecentOrderCap(t *testing.T) {
	orders := make([]models.Order, 0, 15)
	for i := 0; i < 15; i++ {
		orders = append(orders, models.Order{
			ID:        string(rune('a' + i)),
			CreatedAt: testNow.Add(-time.Duration(i+1) * time.Minute),
		})
	}

	got := GenerateNotifications(nil, orders, testNow, NotificationOptions{})
	if len(got) != 10 {
		t.Fatalf("cap: got %d", len(got))
	}
	// Capped to the most recent by creation time.
	if got[0].ID != "new-order-a" {
		t.Fatalf("first: %s", got[0].ID)
	}
	if got[9].ID != "new-order-j" {
		t.Fatalf("last: %s", got[9].ID)
	}
}

func TestGenerateNotificationsOrdering(t *testing.T) {
	products := []models.Product{{ID: "p", Name: "P", Stock: 0}}
	orders := []models.Order{{ID: "o", CreatedAt: testNow.Add(-time.Hour)}}

	got := GenerateNotifications(products, orders, testNow, NotificationOptions{})
	if len(got) != 2 {
		t.Fatalf("len: got %d", len(got))
	}
	// Stock alert carries the generation instant, newer than the order event.
	if got[0].Type != models.NotificationOutOfStock || got[1].Type != models.NotificationNewOrder {
		t.Fatalf("ordering: %+v", got)
	}
}

func TestGenerateNotificationsIDStability(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "A", Stock: 2}}
	orders := []models.Order{{ID: "o1", CreatedAt: testNow.Add(-time.Minute)}}
	opts := NotificationOptions{Threshold: 10}

	first := GenerateNotifications(products, orders, testNow, opts)
	second := GenerateNotifications(products, orders, testNow.Add(time.Second), opts)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("id changed across passes: %s vs %s", first[i].ID, second[i].ID)
		}
	}
}

func TestNotificationID(t *testing.T) {
	if got := NotificationID(models.NotificationLowStock, "42"); got != "low-stock-alert-42" {
		t.Fatalf("got %q", got)
	}
}
