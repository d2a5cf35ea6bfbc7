// Package messaging hands finished guest messages to the delivery pipeline.
// Providers (email, WhatsApp) consume from the broker; this service's
// responsibility ends at the acknowledged publish.
package messaging

import (
	"context"
	"encoding/json"
	"sync"
)

// Publisher is the interface used by services to publish dispatch events
type Publisher interface {
	// Publish marshals the value to JSON and publishes it under the given key
	Publish(ctx context.Context, key string, value interface{}) error
	// Close flushes and releases the underlying client
	Close() error
}

// MemoryPublisher collects published records in memory for tests
type MemoryPublisher struct {
	mu      sync.Mutex
	records []MemoryRecord
	failErr error
}

// MemoryRecord is one captured publish
type MemoryRecord struct {
	Key   string
	Value []byte
}

// NewMemoryPublisher creates an in-memory publisher
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// FailWith makes every subsequent Publish return the given error
func (p *MemoryPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failErr = err
}

// Publish captures the record
func (p *MemoryPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failErr != nil {
		return p.failErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	p.records = append(p.records, MemoryRecord{Key: key, Value: b})
	return nil
}

// Records returns a copy of everything published so far
func (p *MemoryPublisher) Records() []MemoryRecord {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]MemoryRecord, len(p.records))
	copy(out, p.records)
	return out
}

// Close is a no-op
func (p *MemoryPublisher) Close() error {
	return nil
}
