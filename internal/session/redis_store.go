package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hobbist2102/rsvp-app/pkg/redis"
)

// RedisStore persists session snapshots in Redis with a sliding TTL
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "session:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.keyPrefix + sessionID + ":event"
}

// Get returns the snapshot for the session, or ErrNotFound
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Snapshot, error) {
	val, err := s.client.Get(ctx, s.key(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		// Corrupt snapshot behaves like an absent one
		_ = s.client.Del(ctx, s.key(sessionID))
		return nil, ErrNotFound
	}
	return &snap, nil
}

// Put stores the snapshot. The call blocks until Redis acknowledges the
// write so the next request on this session observes it.
func (s *RedisStore) Put(ctx context.Context, sessionID string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Delete removes the snapshot, if present
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
