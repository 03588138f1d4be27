package repository

import (
	"context"
	"fmt"
	"time"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/domain/repository"
	xhttp "ShopPulse/pkg/http"
)

// HTTPSnapshotSource pulls the commerce snapshot from the store service's
// read-only JSON API.
type HTTPSnapshotSource struct {
	baseURL string
	client  *xhttp.Client
}

// NewHTTPSnapshotSource creates an HTTP-backed snapshot source.
func NewHTTPSnapshotSource(baseURL string, timeout time.Duration) repository.SnapshotSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSnapshotSource{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (s *HTTPSnapshotSource) Fetch(ctx context.Context) (*models.Snapshot, error) {
	var orders []rawOrder
	if err := s.get(ctx, "/orders", &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	var products []rawProduct
	if err := s.get(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	var categories []rawCategory
	if err := s.get(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	now := time.Now()
	return &models.Snapshot{
		Version:    now.UnixNano(),
		FetchedAt:  now,
		Orders:     normalizeOrders(orders),
		Products:   normalizeProducts(products),
		Categories: normalizeCategories(categories),
	}, nil
}

func (s *HTTPSnapshotSource) Health(ctx context.Context) error {
	var categories []rawCategory
	return s.get(ctx, "/categories", &categories)
}

func (s *HTTPSnapshotSource) get(ctx context.Context, path string, dest interface{}) error {
	return s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.baseURL + path,
	}, dest)
}
