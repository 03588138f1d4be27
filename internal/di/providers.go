package di

import (
	"fmt"
	"time"

	"ShopPulse/internal/domain/repository"
	"ShopPulse/internal/handler/api"
	internalrepo "ShopPulse/internal/repository"
	"ShopPulse/internal/usecase"
	"ShopPulse/pkg/cache"
	pkgch "ShopPulse/pkg/clickhouse"
	"ShopPulse/pkg/config"
	xhttp "ShopPulse/pkg/http"
	pkgkafka "ShopPulse/pkg/kafka"
	"ShopPulse/pkg/logger"
	"ShopPulse/pkg/metrics"
	"ShopPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return logger.New(&logger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client when the replica is the
// configured source. Returns nil for the HTTP source.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Source.Type != "clickhouse" {
		return nil, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideRedisCache creates the Redis cache when enabled. Returns nil when
// Redis is disabled; dependents fall back to in-process implementations.
func ProvideRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, nil
}

// ProvideCacheService selects the report result cache.
func ProvideCacheService(rc *cache.RedisCache) cache.Service {
	if rc != nil {
		return cache.NewLayeredCache(rc)
	}
	return cache.NewMemoryCache()
}

// ProvideReadState selects the read-state store.
func ProvideReadState(rc *cache.RedisCache) repository.ReadState {
	if rc != nil {
		return internalrepo.NewRedisReadState(rc.Client(), rc.Prefix())
	}
	return internalrepo.NewMemoryReadState()
}

// ProvideBroadcaster selects the change-signal transport.
func ProvideBroadcaster(rc *cache.RedisCache, log *logger.Logger) repository.Broadcaster {
	if rc != nil {
		return internalrepo.NewRedisBroadcaster(rc.Client(), rc.Prefix(), log)
	}
	return internalrepo.NewMemoryBroadcaster()
}

// ProvideSettings selects the settings reader.
func ProvideSettings(rc *cache.RedisCache, cfg *config.Config) repository.Settings {
	if rc != nil {
		return internalrepo.NewRedisSettings(rc.Client(), rc.Prefix(), cfg.Report.LowStockThreshold)
	}
	return internalrepo.StaticSettings{Threshold: cfg.Report.LowStockThreshold}
}

// ProvideSnapshotSource selects the upstream source.
func ProvideSnapshotSource(cfg *config.Config, chClient *pkgch.Client) (repository.SnapshotSource, error) {
	switch cfg.Source.Type {
	case "clickhouse":
		if chClient == nil {
			return nil, fmt.Errorf("clickhouse source requires a client")
		}
		return internalrepo.NewClickHouseSnapshotSource(chClient.DB(), cfg.ClickHouse.Database), nil
	case "http":
		return internalrepo.NewHTTPSnapshotSource(cfg.Source.BaseURL, cfg.Source.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

// ProvideKafkaProducer creates the Kafka producer when enabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, 0),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePassEvents selects the pass-summary sink. With a producer present
// the error-log collector is attached too, batching repeated error logs onto
// a sibling topic.
func ProvidePassEvents(producer *pkgkafka.Producer, cfg *config.Config, log *logger.Logger) repository.PassEvents {
	if producer == nil {
		return internalrepo.NoopPassEvents{}
	}
	log.AddCollector(&logger.CollectionConfig{
		TimeInterval:   time.Minute,
		CountThreshold: 100,
		Topic:          cfg.Kafka.Topic + ".errors",
		Publisher:      producer,
	})
	return internalrepo.NewKafkaPassEvents(producer, cfg.Kafka.Topic, log)
}

// ProvideReportUseCase creates the report use case.
func ProvideReportUseCase(
	source repository.SnapshotSource,
	settings repository.Settings,
	events repository.PassEvents,
	m repository.Metrics,
	cacheSvc cache.Service,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.ReportUseCase {
	return usecase.NewReportUseCase(source, settings, events, m, cacheSvc, log, usecase.ReportOptions{
		SourceName:        cfg.Source.Type,
		RecentOrderWindow: cfg.Report.RecentOrderWindow,
		RecentOrderCap:    cfg.Report.RecentOrderCap,
		CacheTTL:          cfg.Report.CacheTTL,
	})
}

// ProvideNotificationUseCase creates the notification use case.
func ProvideNotificationUseCase(
	reports *usecase.ReportUseCase,
	readState repository.ReadState,
	broadcaster repository.Broadcaster,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.NotificationUseCase {
	return usecase.NewNotificationUseCase(reports, readState, broadcaster, m, log)
}

// ProvideRefreshLoop creates the refresh loop.
func ProvideRefreshLoop(reports *usecase.ReportUseCase, cfg *config.Config, log *logger.Logger) *usecase.RefreshLoop {
	return usecase.NewRefreshLoop(reports, cfg.Report.PollInterval, log)
}

// ProvideHandlers registers every HTTP surface.
func ProvideHandlers(
	reports *usecase.ReportUseCase,
	notifications *usecase.NotificationUseCase,
	cacheSvc cache.Service,
	log *logger.Logger,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewReportHandler(reports, cacheSvc, log),
		api.NewNotificationHandler(notifications, log),
		api.NewWSHandler(notifications, log),
	}
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	loop *usecase.RefreshLoop,
	handlers []xhttp.Handler,
	chClient *pkgch.Client,
	rc *cache.RedisCache,
	events repository.PassEvents,
	log *logger.Logger,
) *server.App {
	return server.New(cfg, loop, handlers, chClient, rc, events, log)
}
