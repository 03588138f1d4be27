package repository

import (
	"context"
	"sync"
)

// MemoryBroadcaster fans change signals out to in-process subscribers.
type MemoryBroadcaster struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewMemoryBroadcaster() *MemoryBroadcaster {
	return &MemoryBroadcaster{subs: make(map[int]chan struct{})}
}

func (b *MemoryBroadcaster) Broadcast(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

func (b *MemoryBroadcaster) Subscribe(_ context.Context) (<-chan struct{}, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel, nil
}
