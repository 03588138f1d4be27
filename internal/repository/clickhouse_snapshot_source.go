package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/domain/repository"
	"ShopPulse/pkg/util"
)

// ClickHouseSnapshotSource reads the analytics replica of the commerce data.
// The replica mirrors the store's orders, order_items, products, and
// categories tables; this source only ever reads.
type ClickHouseSnapshotSource struct {
	db       *sql.DB
	database string
}

// NewClickHouseSnapshotSource creates a snapshot source over the replica.
func NewClickHouseSnapshotSource(db *sql.DB, database string) repository.SnapshotSource {
	return &ClickHouseSnapshotSource{db: db, database: database}
}

func (s *ClickHouseSnapshotSource) Fetch(ctx context.Context) (*models.Snapshot, error) {
	orders, err := s.queryOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}

	products, err := s.queryProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	categories, err := s.queryCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	now := time.Now()
	snap := &models.Snapshot{
		Version:    now.UnixNano(),
		FetchedAt:  now,
		Products:   products,
		Categories: categories,
	}
	for _, o := range orders {
		snap.Orders = append(snap.Orders, *o)
	}
	return snap, nil
}

func (s *ClickHouseSnapshotSource) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseSnapshotSource) queryOrders(ctx context.Context) ([]*models.Order, error) {
	q := fmt.Sprintf("SELECT id, created_at, status, payment_status, total FROM %s.orders ORDER BY created_at", s.database)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var (
			o         models.Order
			createdAt string
			total     string
		)
		if err := rows.Scan(&o.ID, &createdAt, &o.Status, &o.PaymentStatus, &total); err != nil {
			return nil, err
		}
		// Same loose handling as the HTTP boundary: bad dates keep the zero
		// time, bad totals count as zero.
		o.CreatedAt, _ = util.ParseTime(createdAt)
		o.Total = util.ParseFloatDefault(total, 0)
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (s *ClickHouseSnapshotSource) attachItems(ctx context.Context, orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	q := fmt.Sprintf("SELECT order_id, product_id, product_name, quantity, unit_price FROM %s.order_items ORDER BY order_id", s.database)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			item    models.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.CapturedName, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		if item.UnitPrice < 0 {
			item.UnitPrice = 0
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

func (s *ClickHouseSnapshotSource) queryProducts(ctx context.Context) ([]models.Product, error) {
	q := fmt.Sprintf("SELECT id, name, stock, category_id FROM %s.products", s.database)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ClickHouseSnapshotSource) queryCategories(ctx context.Context) ([]models.Category, error) {
	q := fmt.Sprintf("SELECT id, name FROM %s.categories", s.database)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
