package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ShopPulse/pkg/logger"
)

const broadcastChannelSuffix = "notifications:changed"

// RedisBroadcaster signals read-state changes across instances through Redis
// pub/sub. The message carries no payload; subscribers recompute from the
// store on every tick.
type RedisBroadcaster struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

func NewRedisBroadcaster(client *redis.Client, prefix string, log *logger.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{
		client:  client,
		channel: fmt.Sprintf("%s:%s", prefix, broadcastChannelSuffix),
		logger:  log,
	}
}

func (b *RedisBroadcaster) Broadcast(ctx context.Context) error {
	return b.client.Publish(ctx, b.channel, "").Err()
}

// Subscribe returns a channel that receives an empty signal per published
// change. The cancel func tears down the underlying subscription.
func (b *RedisBroadcaster) Subscribe(ctx context.Context) (<-chan struct{}, func(), error) {
	sub := b.client.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	signals := make(chan struct{}, 1)
	done := make(chan struct{})

	go func() {
		defer close(signals)
		msgs := sub.Channel()
		for {
			select {
			case <-done:
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				// Coalesce: one pending signal is enough.
				select {
				case signals <- struct{}{}:
				default:
				}
			}
		}
	}()

	cancel := func() {
		close(done)
		if err := sub.Close(); err != nil {
			b.logger.Warn("failed to close redis subscription", logger.Error(err))
		}
	}
	return signals, cancel, nil
}
