package repository

import (
	"context"
	"sync"
)

// MemoryReadState keeps the acknowledged-notification set in process memory.
// Used when Redis is disabled; state does not survive a restart.
type MemoryReadState struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewMemoryReadState() *MemoryReadState {
	return &MemoryReadState{ids: make(map[string]struct{})}
}

func (s *MemoryReadState) IsRead(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok, nil
}

func (s *MemoryReadState) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
	return nil
}

func (s *MemoryReadState) MarkAllRead(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

func (s *MemoryReadState) ReadIDs(_ context.Context) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out, nil
}
