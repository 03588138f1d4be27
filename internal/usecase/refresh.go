package usecase

import (
	"context"
	"time"

	"ShopPulse/pkg/logger"
)

const maxPollInterval = 30 * time.Second

// RefreshLoop drives periodic passes. The interval is clamped to thirty
// seconds so consumers converge on upstream changes within one tick.
type RefreshLoop struct {
	reports  *ReportUseCase
	interval time.Duration
	logger   *logger.Logger
}

func NewRefreshLoop(reports *ReportUseCase, interval time.Duration, log *logger.Logger) *RefreshLoop {
	if interval <= 0 || interval > maxPollInterval {
		interval = maxPollInterval
	}
	return &RefreshLoop{reports: reports, interval: interval, logger: log}
}

// Run blocks until ctx is cancelled. The first pass fires immediately so the
// service is populated before the first tick.
func (l *RefreshLoop) Run(ctx context.Context) {
	l.logger.Info("refresh loop started", logger.Duration("interval", l.interval))

	l.pass(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("refresh loop stopped")
			return
		case <-ticker.C:
			l.pass(ctx)
		}
	}
}

func (l *RefreshLoop) pass(ctx context.Context) {
	// Refresh logs and flags failures itself; the loop just keeps ticking.
	_ = l.reports.Refresh(ctx)
}
