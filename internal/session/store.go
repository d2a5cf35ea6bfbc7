// Package session persists the per-session event snapshot: a cached copy of
// the last event a session resolved. The snapshot is never authoritative —
// every resolution re-validates it against the events table — but refreshing
// it is part of the request, so writes are synchronous and a failed write
// fails the request.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// ErrNotFound is returned when a session has no stored snapshot
var ErrNotFound = errors.New("session snapshot not found")

// Snapshot is the cached event context for one browser session
type Snapshot struct {
	EventID   int64         `json:"event_id"`
	Event     *domain.Event `json:"event"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Store persists snapshots keyed by session id
type Store interface {
	// Get returns the snapshot for the session, or ErrNotFound
	Get(ctx context.Context, sessionID string) (*Snapshot, error)
	// Put stores the snapshot, replacing any previous one. It must not
	// return until the write is durable in the store; callers rely on
	// read-your-own-write across consecutive requests.
	Put(ctx context.Context, sessionID string, snap *Snapshot) error
	// Delete removes the snapshot, if present
	Delete(ctx context.Context, sessionID string) error
}
