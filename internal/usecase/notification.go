package usecase

import (
	"context"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/domain/repository"
	"ShopPulse/pkg/logger"
)

// NotificationUseCase annotates the derived feed with persisted read flags
// and applies read mutations. Every mutation broadcasts a change signal so
// other instances and connected sockets re-derive their view.
type NotificationUseCase struct {
	reports     *ReportUseCase
	readState   repository.ReadState
	broadcaster repository.Broadcaster
	metrics     repository.Metrics
	logger      *logger.Logger
}

func NewNotificationUseCase(
	reports *ReportUseCase,
	readState repository.ReadState,
	broadcaster repository.Broadcaster,
	metrics repository.Metrics,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		reports:     reports,
		readState:   readState,
		broadcaster: broadcaster,
		metrics:     metrics,
		logger:      log,
	}
}

// Feed returns the derived notifications, newest first, with read flags and
// the unread count.
func (u *NotificationUseCase) Feed(ctx context.Context) (models.NotificationFeed, error) {
	notifications, err := u.reports.Notifications(ctx)
	if err != nil {
		return models.NotificationFeed{}, err
	}

	readIDs, err := u.readState.ReadIDs(ctx)
	if err != nil {
		return models.NotificationFeed{}, err
	}

	unread := 0
	for i := range notifications {
		_, read := readIDs[notifications[i].ID]
		notifications[i].Read = read
		if !read {
			unread++
		}
	}

	u.metrics.SetUnreadCount(unread)
	return models.NotificationFeed{Notifications: notifications, UnreadCount: unread}, nil
}

// UnreadCount is the cheap variant for push payloads.
func (u *NotificationUseCase) UnreadCount(ctx context.Context) (int, error) {
	feed, err := u.Feed(ctx)
	if err != nil {
		return 0, err
	}
	return feed.UnreadCount, nil
}

// MarkRead acknowledges one notification id. Ids that no longer appear in
// the current feed are accepted: the set is add-only and a regenerated feed
// may resurface them.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	if err := u.readState.MarkRead(ctx, id); err != nil {
		return err
	}
	u.metrics.RecordReadMutation("mark_read")
	u.signalChange(ctx)
	return nil
}

// MarkAllRead acknowledges every notification in the current feed.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context) error {
	notifications, err := u.reports.Notifications(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		ids = append(ids, n.ID)
	}
	if err := u.readState.MarkAllRead(ctx, ids); err != nil {
		return err
	}

	u.metrics.RecordReadMutation("mark_all_read")
	u.signalChange(ctx)
	return nil
}

// Subscribe exposes the change signal for push consumers.
func (u *NotificationUseCase) Subscribe(ctx context.Context) (<-chan struct{}, func(), error) {
	return u.broadcaster.Subscribe(ctx)
}

func (u *NotificationUseCase) signalChange(ctx context.Context) {
	if err := u.broadcaster.Broadcast(ctx); err != nil {
		u.logger.Warn("failed to broadcast read-state change", logger.Error(err))
	}
}
