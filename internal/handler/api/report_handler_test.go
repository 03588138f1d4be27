package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/repository"
	"ShopPulse/internal/usecase"
	"ShopPulse/pkg/cache"
	"ShopPulse/pkg/logger"
)

type staticSource struct{ snap *models.Snapshot }

func (s staticSource) Fetch(_ context.Context) (*models.Snapshot, error) { return s.snap, nil }
func (s staticSource) Health(_ context.Context) error                    { return nil }

type fixedSettings struct{}

func (fixedSettings) LowStockThreshold(_ context.Context) int { return 10 }

type nopMetrics struct{}

func (nopMetrics) RecordPass(string, string, float64) {}
func (nopMetrics) RecordPassError(string)             {}
func (nopMetrics) RecordStaleServe()                  {}
func (nopMetrics) RecordNotifications(string, int)    {}
func (nopMetrics) RecordReadMutation(string)          {}
func (nopMetrics) SetUnreadCount(int)                 {}

func testStack(t *testing.T) (*echo.Echo, *usecase.NotificationUseCase) {
	t.Helper()

	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	snap := &models.Snapshot{
		Version:   1,
		FetchedAt: now,
		Orders: []models.Order{{
			ID: "ord-1", CreatedAt: now.Add(-time.Hour),
			Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid,
			Total: 80,
			Items: []models.OrderItem{{ProductID: "p1", CapturedName: "Lamp", Quantity: 1, UnitPrice: 80}},
		}},
		Products:   []models.Product{{ID: "p1", Name: "Lamp", Stock: 0, CategoryID: "c1"}},
		Categories: []models.Category{{ID: "c1", Name: "Home"}},
	}

	cacheSvc := cache.NewMemoryCache()
	reports := usecase.NewReportUseCase(
		staticSource{snap: snap}, fixedSettings{}, repository.NoopPassEvents{}, nopMetrics{},
		cacheSvc, log,
		usecase.ReportOptions{SourceName: "test", CacheTTL: time.Minute},
	)
	if err := reports.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	notifications := usecase.NewNotificationUseCase(
		reports, repository.NewMemoryReadState(), repository.NewMemoryBroadcaster(), nopMetrics{}, log)

	e := echo.New()
	NewReportHandler(reports, cacheSvc, log).RegisterRoutes(e)
	NewNotificationHandler(notifications, log).RegisterRoutes(e)
	return e, notifications
}

func doRequest(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRevenueEndpoint(t *testing.T) {
	e, _ := testStack(t)

	rec := doRequest(e, http.MethodGet, "/api/revenue?period=7d")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data models.RevenueSeries `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.Period != "7d" || len(body.Data.Points) != 7 {
		t.Fatalf("unexpected series: %+v", body.Data)
	}
	if body.Data.Total != 80 {
		t.Fatalf("Total = %v, want 80", body.Data.Total)
	}
}

func TestTopProductsRejectsBadLimit(t *testing.T) {
	e, _ := testStack(t)

	rec := doRequest(e, http.MethodGet, "/api/top-products?limit=500")

	// The envelope always rides on HTTP 200; the status lives in the body.
	var body struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Status != http.StatusBadRequest {
		t.Fatalf("envelope status = %d, want 400", body.Status)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	e, _ := testStack(t)

	rec := doRequest(e, http.MethodGet, "/api/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data models.DashboardReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.SnapshotVersion != 1 {
		t.Fatalf("SnapshotVersion = %d, want 1", body.Data.SnapshotVersion)
	}
	if body.Data.Inventory.Summary.OutOfStock != 1 {
		t.Fatalf("unexpected inventory: %+v", body.Data.Inventory.Summary)
	}
}

func TestNotificationFeedAndMarkRead(t *testing.T) {
	e, _ := testStack(t)

	rec := doRequest(e, http.MethodGet, "/api/notifications")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data models.NotificationFeed `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.UnreadCount != 2 {
		t.Fatalf("UnreadCount = %d, want 2", body.Data.UnreadCount)
	}

	id := body.Data.Notifications[0].ID
	rec = doRequest(e, http.MethodPost, "/api/notifications/"+id+"/read")
	if rec.Code != http.StatusOK {
		t.Fatalf("mark read status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(e, http.MethodGet, "/api/notifications")
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.UnreadCount != 1 {
		t.Fatalf("UnreadCount = %d after mark read, want 1", body.Data.UnreadCount)
	}
}

func TestMarkAllReadEndpoint(t *testing.T) {
	e, _ := testStack(t)

	rec := doRequest(e, http.MethodPost, "/api/notifications/read-all")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(e, http.MethodGet, "/api/notifications")
	var body struct {
		Data models.NotificationFeed `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.UnreadCount != 0 {
		t.Fatalf("UnreadCount = %d after read-all, want 0", body.Data.UnreadCount)
	}
}

func TestHealthzEndpoint(t *testing.T) {
	e, _ := testStack(t)

	rec := doRequest(e, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
