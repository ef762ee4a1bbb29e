// Package kvstore is a small key-value abstraction with per-key TTL.
// The gallery session and rate-limit state live here; the interface keeps
// both injectable so tests run against the in-memory implementation.
package kvstore

import (
	"sync"
	"time"
)

// Store is a TTL-aware key-value store. Get must never return an entry whose
// TTL has elapsed; implementations clear such entries as a side effect of the
// read.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Memory is the in-process Store. Expired entries are evicted lazily on read;
// there is no background sweeper.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewMemoryWithClock is used by tests to control expiry.
func NewMemoryWithClock(now func() time.Time) *Memory {
	m := NewMemory()
	m.now = now
	return m
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !e.expiresAt.IsZero() && !e.expiresAt.After(m.now()) {
		m.mu.Lock()
		// Re-check under the write lock: the entry may have been replaced.
		if cur, ok := m.entries[key]; ok && !cur.expiresAt.IsZero() && !cur.expiresAt.After(m.now()) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
