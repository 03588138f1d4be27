package models

import "time"

// Order statuses as delivered by the commerce collaborator.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Order is a read-only order snapshot, already normalized at the ingress
// boundary. CreatedAt is the zero time when the upstream value did not parse.
type Order struct {
	ID            string
	CreatedAt     time.Time
	Status        string
	PaymentStatus string
	Total         float64
	Items         []OrderItem
}

// OrderItem is a line item within an order. CapturedName is the product name
// as it was at purchase time, kept for when the product no longer exists.
type OrderItem struct {
	ProductID    string
	CapturedName string
	Quantity     int
	UnitPrice    float64
}

// Product is a read-only catalog entry. Negative stock from malformed input
// is treated as out of stock downstream.
type Product struct {
	ID         string
	Name       string
	Stock      int
	CategoryID string
}

// Category is a read-only catalog category.
type Category struct {
	ID   string
	Name string
}

// Snapshot is one immutable view of the commerce data, fetched per pass.
// Version orders snapshots for last-write-wins result publication.
type Snapshot struct {
	Version    int64
	FetchedAt  time.Time
	Orders     []Order
	Products   []Product
	Categories []Category
}
