package repository

import (
	"testing"
	"time"
)

func TestNormalizeOrderCoercesLooseFields(t *testing.T) {
	raw := rawOrder{
		ID:            "ord-1",
		CreatedAt:     "2025-03-10T08:00:00Z",
		Status:        "completed",
		PaymentStatus: "paid",
		Total:         "149.90",
		Items: []rawOrderItem{
			{ProductID: "p1", Name: "Desk Lamp", Quantity: 2, Price: 49.95},
			{ProductID: "p2", Name: "Cable", Quantity: -1, Price: "-5"},
		},
	}

	order := normalizeOrder(raw)

	want := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if !order.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v, want %v", order.CreatedAt, want)
	}
	if order.Total != 149.90 {
		t.Fatalf("Total = %v, want 149.90", order.Total)
	}
	if order.Items[0].UnitPrice != 49.95 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", order.Items[0])
	}
	if order.Items[1].Quantity != 0 || order.Items[1].UnitPrice != 0 {
		t.Fatalf("negative item fields not clamped: %+v", order.Items[1])
	}
}

func TestNormalizeOrderBadDateKeepsZeroTime(t *testing.T) {
	order := normalizeOrder(rawOrder{ID: "ord-2", CreatedAt: "yesterday-ish", Total: 10})
	if !order.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt = %v, want zero time", order.CreatedAt)
	}
}

func TestNormalizeOrderUnknownTotalType(t *testing.T) {
	order := normalizeOrder(rawOrder{ID: "ord-3", Total: map[string]int{"amount": 5}})
	if order.Total != 0 {
		t.Fatalf("Total = %v, want 0 for unparseable value", order.Total)
	}
}

func TestNormalizeProductsAndCategories(t *testing.T) {
	products := normalizeProducts([]rawProduct{{ID: "p1", Name: "Lamp", Stock: 3, CategoryID: "c1"}})
	if len(products) != 1 || products[0].Name != "Lamp" || products[0].Stock != 3 {
		t.Fatalf("unexpected products: %+v", products)
	}

	categories := normalizeCategories([]rawCategory{{ID: "c1", Name: "Lighting"}})
	if len(categories) != 1 || categories[0].Name != "Lighting" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}
