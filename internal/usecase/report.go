package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/domain/repository"
	"ShopPulse/internal/services/report"
	"ShopPulse/pkg/cache"
	"ShopPulse/pkg/logger"
)

// ErrNoSnapshot is returned before the first successful fetch completes.
var ErrNoSnapshot = errors.New("no snapshot available yet")

// ReportOptions tunes snapshot-to-report derivation.
type ReportOptions struct {
	SourceName        string
	RecentOrderWindow time.Duration
	RecentOrderCap    int
	CacheTTL          time.Duration
}

// ReportUseCase owns the refresh pass and derives every report view from the
// retained snapshot. A failed fetch keeps serving the previous snapshot,
// flagged stale with the pass error attached; a fetched snapshot replaces the
// retained one only when its version is newer.
type ReportUseCase struct {
	source   repository.SnapshotSource
	settings repository.Settings
	events   repository.PassEvents
	metrics  repository.Metrics
	cache    cache.Service
	logger   *logger.Logger
	opts     ReportOptions

	mu        sync.RWMutex
	snapshot  *models.Snapshot
	stale     bool
	passError string
}

func NewReportUseCase(
	source repository.SnapshotSource,
	settings repository.Settings,
	events repository.PassEvents,
	metrics repository.Metrics,
	cacheSvc cache.Service,
	log *logger.Logger,
	opts ReportOptions,
) *ReportUseCase {
	if opts.RecentOrderWindow <= 0 {
		opts.RecentOrderWindow = 24 * time.Hour
	}
	if opts.RecentOrderCap <= 0 {
		opts.RecentOrderCap = 10
	}
	return &ReportUseCase{
		source:   source,
		settings: settings,
		events:   events,
		metrics:  metrics,
		cache:    cacheSvc,
		logger:   log,
		opts:     opts,
	}
}

// Refresh runs one pass: fetch a snapshot, install it if newer, publish the
// pass summary. On fetch failure the retained snapshot stays live and is
// served stale until a pass succeeds again.
func (u *ReportUseCase) Refresh(ctx context.Context) error {
	start := time.Now()

	snap, err := u.source.Fetch(ctx)
	if err != nil {
		u.mu.Lock()
		servingStale := u.snapshot != nil
		u.stale = servingStale
		u.passError = err.Error()
		u.mu.Unlock()

		u.metrics.RecordPass(u.opts.SourceName, "error", time.Since(start).Seconds())
		u.metrics.RecordPassError("fetch")
		if servingStale {
			u.metrics.RecordStaleServe()
		}
		u.logger.Error("snapshot fetch failed", logger.Error(err))
		return err
	}

	u.mu.Lock()
	installed := u.snapshot == nil || snap.Version > u.snapshot.Version
	if installed {
		u.snapshot = snap
	}
	u.stale = false
	u.passError = ""
	u.mu.Unlock()

	u.metrics.RecordPass(u.opts.SourceName, "ok", time.Since(start).Seconds())

	if !installed {
		u.logger.Debug("fetched snapshot not newer than retained",
			logger.Int64("version", snap.Version))
		return nil
	}

	u.publishSummary(ctx, snap)

	u.logger.Info("snapshot installed",
		logger.Int64("version", snap.Version),
		logger.Int("orders", len(snap.Orders)),
		logger.Int("products", len(snap.Products)),
		logger.Duration("elapsed", time.Since(start)))
	return nil
}

func (u *ReportUseCase) publishSummary(ctx context.Context, snap *models.Snapshot) {
	w := report.ResolveWindow("30d", snap.FetchedAt)
	eligible := report.EligibleOrders(snap.Orders, w.RangeStart)
	series := report.AggregateRevenue(w, eligible)
	notifs := report.GenerateNotifications(snap.Products, snap.Orders, snap.FetchedAt, u.notificationOptions(ctx))

	byType := make(map[string]int)
	for _, n := range notifs {
		byType[n.Type]++
	}
	for typ, n := range byType {
		u.metrics.RecordNotifications(typ, n)
	}

	_ = u.events.PublishSummary(ctx, models.PassSummary{
		SnapshotVersion: snap.Version,
		GeneratedAt:     snap.FetchedAt,
		Period:          w.Period,
		EligibleOrders:  len(eligible),
		RevenueTotal:    series.Total,
		Notifications:   len(notifs),
	})
}

// current returns the retained snapshot together with its staleness state.
func (u *ReportUseCase) current() (*models.Snapshot, bool, string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.snapshot == nil {
		return nil, false, u.passError, ErrNoSnapshot
	}
	return u.snapshot, u.stale, u.passError, nil
}

// Revenue returns the bucketed revenue series for a period token.
func (u *ReportUseCase) Revenue(ctx context.Context, period string) (models.RevenueSeries, error) {
	snap, _, _, err := u.current()
	if err != nil {
		return models.RevenueSeries{}, err
	}

	key := cache.Key("report:revenue", snap.Version, period)
	var series models.RevenueSeries
	if err := u.cache.Get(ctx, key, &series); err == nil {
		return series, nil
	}

	w := report.ResolveWindow(period, snap.FetchedAt)
	eligible := report.EligibleOrders(snap.Orders, w.RangeStart)
	series = report.AggregateRevenue(w, eligible)

	u.cacheSet(ctx, key, series)
	return series, nil
}

// TopProducts ranks products by revenue inside the period window.
func (u *ReportUseCase) TopProducts(ctx context.Context, period string, limit int) ([]models.TopProduct, error) {
	snap, _, _, err := u.current()
	if err != nil {
		return nil, err
	}

	key := cache.Key("report:top_products", snap.Version, period, limit)
	var ranked []models.TopProduct
	if err := u.cache.Get(ctx, key, &ranked); err == nil {
		return ranked, nil
	}

	w := report.ResolveWindow(period, snap.FetchedAt)
	eligible := report.EligibleOrders(snap.Orders, w.RangeStart)
	ranked = report.TopProducts(eligible, snap.Products, limit)

	u.cacheSet(ctx, key, ranked)
	return ranked, nil
}

// TopCategories ranks categories by catalog product count.
func (u *ReportUseCase) TopCategories(ctx context.Context, limit int) ([]models.TopCategory, error) {
	snap, _, _, err := u.current()
	if err != nil {
		return nil, err
	}

	key := cache.Key("report:top_categories", snap.Version, limit)
	var ranked []models.TopCategory
	if err := u.cache.Get(ctx, key, &ranked); err == nil {
		return ranked, nil
	}

	ranked = report.TopCategories(snap.Products, snap.Categories, limit)

	u.cacheSet(ctx, key, ranked)
	return ranked, nil
}

// Inventory classifies the catalog against the current low-stock threshold.
func (u *ReportUseCase) Inventory(ctx context.Context) (models.InventoryReport, error) {
	snap, _, _, err := u.current()
	if err != nil {
		return models.InventoryReport{}, err
	}

	threshold := u.settings.LowStockThreshold(ctx)
	key := cache.Key("report:inventory", snap.Version, threshold)
	var inv models.InventoryReport
	if err := u.cache.Get(ctx, key, &inv); err == nil {
		return inv, nil
	}

	inv = report.BuildInventoryReport(snap.Products, threshold)

	u.cacheSet(ctx, key, inv)
	return inv, nil
}

// Notifications derives the raw feed, newest first, read flags unset.
func (u *ReportUseCase) Notifications(ctx context.Context) ([]models.Notification, error) {
	snap, _, _, err := u.current()
	if err != nil {
		return nil, err
	}
	return report.GenerateNotifications(snap.Products, snap.Orders, snap.FetchedAt, u.notificationOptions(ctx)), nil
}

// Dashboard composes every section into one pass result.
func (u *ReportUseCase) Dashboard(ctx context.Context, period string, limit int) (models.DashboardReport, error) {
	snap, stale, passErr, err := u.current()
	if err != nil {
		return models.DashboardReport{}, err
	}

	revenue, err := u.Revenue(ctx, period)
	if err != nil {
		return models.DashboardReport{}, err
	}
	products, err := u.TopProducts(ctx, period, limit)
	if err != nil {
		return models.DashboardReport{}, err
	}
	categories, err := u.TopCategories(ctx, limit)
	if err != nil {
		return models.DashboardReport{}, err
	}
	inventory, err := u.Inventory(ctx)
	if err != nil {
		return models.DashboardReport{}, err
	}
	notifications, err := u.Notifications(ctx)
	if err != nil {
		return models.DashboardReport{}, err
	}

	return models.DashboardReport{
		SnapshotVersion: snap.Version,
		GeneratedAt:     snap.FetchedAt,
		Stale:           stale,
		PassError:       passErr,
		Revenue:         revenue,
		TopProducts:     products,
		TopCategories:   categories,
		Inventory:       inventory,
		Notifications:   notifications,
	}, nil
}

// Stale reports whether the retained snapshot outlived a failed pass.
func (u *ReportUseCase) Stale() (bool, string) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.stale, u.passError
}

// Health reports upstream reachability.
func (u *ReportUseCase) Health(ctx context.Context) error {
	return u.source.Health(ctx)
}

func (u *ReportUseCase) notificationOptions(ctx context.Context) report.NotificationOptions {
	return report.NotificationOptions{
		Threshold:    u.settings.LowStockThreshold(ctx),
		RecentWindow: u.opts.RecentOrderWindow,
		RecentCap:    u.opts.RecentOrderCap,
	}
}

func (u *ReportUseCase) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := u.cache.Set(ctx, key, value, u.opts.CacheTTL); err != nil {
		u.logger.Warn("failed to cache report view", logger.String("key", key), logger.Error(err))
	}
}
