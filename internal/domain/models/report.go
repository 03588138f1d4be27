package models

import "time"

// RevenuePoint is one time bucket of the revenue series.
type RevenuePoint struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
}

// RevenueSeries is the bucketed revenue output for one period.
type RevenueSeries struct {
	Period      string         `json:"period"`
	Granularity string         `json:"granularity"`
	Points      []RevenuePoint `json:"points"`
	Total       float64        `json:"total"`
}

// TopProduct is one entry of the order-based product ranking.
type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

// TopCategory is one entry of the catalog-based category ranking.
// Revenue is always zero: this ranking counts catalog composition, it does
// not attribute order revenue to categories.
type TopCategory struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Revenue    float64 `json:"revenue"`
}

// Stock levels.
const (
	StockLevelOut = "out-of-stock"
	StockLevelLow = "low-stock"
	StockLevelIn  = "in-stock"
)

// InventoryItem is one product's stock classification.
type InventoryItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Level     string `json:"level"`
}

// InventorySummary counts products per classification bucket.
type InventorySummary struct {
	OutOfStock int `json:"outOfStock"`
	LowStock   int `json:"lowStock"`
	InStock    int `json:"inStock"`
}

// InventoryReport combines per-product classification with summary counts.
type InventoryReport struct {
	Threshold int              `json:"threshold"`
	Items     []InventoryItem  `json:"items"`
	Summary   InventorySummary `json:"summary"`
}

// Notification types and severities.
const (
	NotificationOutOfStock = "out-of-stock-alert"
	NotificationLowStock   = "low-stock-alert"
	NotificationNewOrder   = "new-order"

	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notification is a derived alert. ID is a pure function of (Type, source
// entity id), so recomputing from an unchanged snapshot reproduces it.
// Read is annotated from the read-state store, never persisted here.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationFeed is the ordered feed with its unread count.
type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

// DashboardReport is one full pass result.
type DashboardReport struct {
	SnapshotVersion int64            `json:"snapshotVersion"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Stale           bool             `json:"stale"`
	PassError       string           `json:"passError,omitempty"`
	Revenue         RevenueSeries    `json:"revenue"`
	TopProducts     []TopProduct     `json:"topProducts"`
	TopCategories   []TopCategory    `json:"topCategories"`
	Inventory       InventoryReport  `json:"inventory"`
	Notifications   []Notification   `json:"notifications"`
}

// PassSummary is the compact event published after a successful pass.
type PassSummary struct {
	SnapshotVersion int64     `json:"snapshot_version"`
	GeneratedAt     time.Time `json:"generated_at"`
	Period          string    `json:"period"`
	EligibleOrders  int       `json:"eligible_orders"`
	RevenueTotal    float64   `json:"revenue_total"`
	Notifications   int       `json:"notifications"`
}
