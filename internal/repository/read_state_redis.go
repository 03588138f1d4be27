package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const (
	readStateKeySuffix = "notifications:read"

	// Optimistic retries when concurrent consumers race on the same key.
	readStateTxRetries = 5
)

// RedisReadState persists the acknowledged-notification set as a JSON array
// of id strings under one named key. The set only grows: mutations are
// idempotent unions applied under an optimistic transaction, so concurrent
// consumers converge without coordination. A missing or corrupt payload reads
// as the empty set and is never an error.
type RedisReadState struct {
	client *redis.Client
	key    string
}

// NewRedisReadState creates a Redis-backed read-state store.
func NewRedisReadState(client *redis.Client, prefix string) *RedisReadState {
	return &RedisReadState{
		client: client,
		key:    fmt.Sprintf("%s:%s", prefix, readStateKeySuffix),
	}
}

func (s *RedisReadState) IsRead(ctx context.Context, id string) (bool, error) {
	ids, err := s.ReadIDs(ctx)
	if err != nil {
		return false, err
	}
	_, ok := ids[id]
	return ok, nil
}

func (s *RedisReadState) MarkRead(ctx context.Context, id string) error {
	return s.MarkAllRead(ctx, []string{id})
}

func (s *RedisReadState) MarkAllRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	txf := func(tx *redis.Tx) error {
		current := decodeReadSet(tx.Get(ctx, s.key))

		changed := false
		for _, id := range ids {
			if _, ok := current[id]; !ok {
				current[id] = struct{}{}
				changed = true
			}
		}
		if !changed {
			return nil
		}

		payload, err := encodeReadSet(current)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, payload, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < readStateTxRetries; i++ {
		err = s.client.Watch(ctx, txf, s.key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("read state update contended: %w", err)
}

func (s *RedisReadState) ReadIDs(ctx context.Context) (map[string]struct{}, error) {
	cmd := s.client.Get(ctx, s.key)
	if err := cmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return decodeReadSet(cmd), nil
}

func decodeReadSet(cmd *redis.StringCmd) map[string]struct{} {
	set := make(map[string]struct{})

	data, err := cmd.Bytes()
	if err != nil {
		return set
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// Corrupt payload reads as empty; the next mutation rewrites it.
		return set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func encodeReadSet(set map[string]struct{}) ([]byte, error) {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return json.Marshal(ids)
}
