package report

import (
	"testing"
	"time"

	"ShopPulse/internal/domain/models"
)

func ordersWithItems(items ...[]models.OrderItem) []models.Order {
	orders := make([]models.Order, 0, len(items))
	for i, its := range items {
		orders = append(orders, models.Order{
			ID:            string(rune('a' + i)),
			CreatedAt:     testNow.Add(-time.Hour),
			Status:        models.OrderStatusCompleted,
			PaymentStatus: models.PaymentStatusPaid,
			Items:         its,
		})
	}
	return orders
}

func TestTopProductsAccumulates(t *testing.T) {
	orders := ordersWithItems(
		[]models.OrderItem{{ProductID: "p1", Quantity: 2, UnitPrice: 10}},
		[]models.OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}, {ProductID: "p2", Quantity: 5, UnitPrice: 1}},
	)
	products := []models.Product{{ID: "p1", Name: "Widget"}, {ID: "p2", Name: "Gadget"}}

	got := TopProducts(orders, products, 5)
	if len(got) != 2 {
		t.Fatalf("len: got %d", len(got))
	}
	if got[0].ProductID != "p1" || got[0].Sales != 3 || got[0].Revenue != 30 {
		t.Fatalf("p1: %+v", got[0])
	}
	if got[1].ProductID != "p2" || got[1].Revenue != 5 {
		t.Fatalf("p2: %+v", got[1])
	}
}

func TestTopProductsStableTieBreak(t *testing.T) {
	// Equal revenue: relative order matches first appearance in the input.
	orders := ordersWithItems(
		[]models.OrderItem{{ProductID: "first", Quantity: 2, UnitPrice: 100}},
		[]models.OrderItem{{ProductID: "second", Quantity: 1, UnitPrice: 200}},
	)

	got := TopProducts(orders, nil, 5)
	if len(got) != 2 || got[0].ProductID != "first" || got[1].ProductID != "second" {
		t.Fatalf("tie not stable: %+v", got)
	}
}

func TestTopProductsNameResolution(t *testing.T) {
	orders := ordersWithItems(
		[]models.OrderItem{
			{ProductID: "known", CapturedName: "Old Name", Quantity: 1, UnitPrice: 1},
			{ProductID: "gone", CapturedName: "Captured", Quantity: 1, UnitPrice: 1},
			{ProductID: "mystery", Quantity: 1, UnitPrice: 1},
		},
	)
	products := []models.Product{{ID: "known", Name: "Catalog Name"}}

	got := TopProducts(orders, products, 5)
	byID := map[string]string{}
	for _, p := range got {
		byID[p.ProductID] = p.Name
	}
	if byID["known"] != "Catalog Name" {
		t.Fatalf("catalog lookup: got %q", byID["known"])
	}
	if byID["gone"] != "Captured" {
		t.Fatalf("captured fallback: got %q", byID["gone"])
	}
	if byID["mystery"] != "Unknown product" {
		t.Fatalf("placeholder fallback: got %q", byID["mystery"])
	}
}

func TestTopProductsBound(t *testing.T) {
	orders := ordersWithItems(
		[]models.OrderItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: 3},
			{ProductID: "p2", Quantity: 1, UnitPrice: 2},
			{ProductID: "p3", Quantity: 1, UnitPrice: 1},
			{ProductID: "free", Quantity: 4, UnitPrice: 0},
		},
	)

	if got := TopProducts(orders, nil, 2); len(got) != 2 {
		t.Fatalf("truncate: got %d", len(got))
	}
	// Fewer distinct entities with revenue than requested: no padding, and
	// the zero-revenue product is not ranked.
	if got := TopProducts(orders, nil, 10); len(got) != 3 {
		t.Fatalf("no-pad: got %d", len(got))
	}
}

func TestTopCategoriesCountsCatalog(t *testing.T) {
	products := []models.Product{
		{ID: "1", CategoryID: "c1"},
		{ID: "2", CategoryID: "c1"},
		{ID: "3", CategoryID: "c2"},
		{ID: "4", CategoryID: "c1"},
	}
	categories := []models.Category{{ID: "c1", Name: "Shoes"}, {ID: "c2", Name: "Hats"}}

	got := TopCategories(products, categories, 5)
	if len(got) != 2 {
		t.Fatalf("len: got %d", len(got))
	}
	if got[0].CategoryID != "c1" || got[0].Count != 3 || got[0].Percentage != 75 {
		t.Fatalf("c1: %+v", got[0])
	}
	if got[1].Count != 1 || got[1].Percentage != 25 {
		t.Fatalf("c2: %+v", got[1])
	}
	if got[0].Revenue != 0 || got[1].Revenue != 0 {
		t.Fatalf("category revenue must stay zero: %+v", got)
	}
}

func TestTopCategoriesUnknownCategory(t *testing.T) {
	products := []models.Product{{ID: "1", CategoryID: "ghost"}}

	got := TopCategories(products, nil, 5)
	if len(got) != 1 || got[0].Name != "Unknown category" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestTopCategoriesStableTieBreak(t *testing.T) {
	products := []models.Product{
		{ID: "1", CategoryID: "x"},
		{ID: "2", CategoryID: "y"},
	}
	categories := []models.Category{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}

	got := TopCategories(products, categories, 5)
	if got[0].CategoryID != "x" || got[1].CategoryID != "y" {
		t.Fatalf("tie not stable: %+v", got)
	}
}
