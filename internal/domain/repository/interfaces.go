package repository

import (
	"context"

	"ShopPulse/internal/domain/models"
)

// SnapshotSource fetches one immutable commerce snapshot per pass. This is
// the only blocking boundary of the pipeline.
type SnapshotSource interface {
	Fetch(ctx context.Context) (*models.Snapshot, error)
	Health(ctx context.Context) error
}

// ReadState is the persisted, add-only set of acknowledged notification ids.
// A missing or corrupt persisted payload reads as the empty set.
type ReadState interface {
	IsRead(ctx context.Context, id string) (bool, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, ids []string) error
	ReadIDs(ctx context.Context) (map[string]struct{}, error)
}

// Broadcaster carries the payload-less change signal between consumers.
// Listeners re-derive state by re-querying the store, never from the signal.
type Broadcaster interface {
	Broadcast(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan struct{}, func(), error)
}

// Settings reads persisted configuration values.
type Settings interface {
	LowStockThreshold(ctx context.Context) int
}

// PassEvents publishes a summary after each successful pass. Implementations
// must never fail the pass itself.
type PassEvents interface {
	PublishSummary(ctx context.Context, s models.PassSummary) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordPass(source, status string, seconds float64)
	RecordPassError(kind string)
	RecordStaleServe()
	RecordNotifications(typ string, n int)
	RecordReadMutation(op string)
	SetUnreadCount(n int)
}
