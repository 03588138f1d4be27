package repository

import (
	"ShopPulse/internal/domain/models"
	"ShopPulse/pkg/util"
)

// Raw record shapes as the commerce collaborator delivers them. Dates arrive
// as strings that may not parse and totals as numbers or numeric strings;
// everything is normalized here once so downstream code only ever sees the
// validated snapshot types.

type rawOrder struct {
	ID            string         `json:"id"`
	CreatedAt     string         `json:"createdAt"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	Total         interface{}    `json:"total"`
	Items         []rawOrderItem `json:"items"`
}

type rawOrderItem struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Price     interface{} `json:"price"`
}

type rawProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Stock      int    `json:"stock"`
	CategoryID string `json:"categoryId"`
}

type rawCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func normalizeOrders(raws []rawOrder) []models.Order {
	orders := make([]models.Order, 0, len(raws))
	for _, r := range raws {
		orders = append(orders, normalizeOrder(r))
	}
	return orders
}

func normalizeOrder(r rawOrder) models.Order {
	// Unparseable createdAt keeps the zero time; the filter skips it.
	createdAt, _ := util.ParseTime(r.CreatedAt)

	items := make([]models.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}
		price := util.CoerceFloat(it.Price)
		if price < 0 {
			price = 0
		}
		items = append(items, models.OrderItem{
			ProductID:    it.ProductID,
			CapturedName: it.Name,
			Quantity:     qty,
			UnitPrice:    price,
		})
	}

	return models.Order{
		ID:            r.ID,
		CreatedAt:     createdAt,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		Total:         util.CoerceFloat(r.Total),
		Items:         items,
	}
}

func normalizeProducts(raws []rawProduct) []models.Product {
	products := make([]models.Product, 0, len(raws))
	for _, r := range raws {
		products = append(products, models.Product(r))
	}
	return products
}

func normalizeCategories(raws []rawCategory) []models.Category {
	categories := make([]models.Category, 0, len(raws))
	for _, r := range raws {
		categories = append(categories, models.Category(r))
	}
	return categories
}
