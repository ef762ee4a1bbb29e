// Package ratelimit counts failed access-gate attempts per client and blocks
// further attempts for a fixed window. It is an advisory UX guard, not a
// security boundary: the key is the caller's network identity, which a
// determined client can rotate.
package ratelimit

import (
	"encoding/json"
	"time"

	"evermore/internal/pkg/kvstore"
)

const (
	DefaultMaxAttempts = 5
	DefaultBlock       = 15 * time.Minute
)

type state struct {
	Attempts     int        `json:"attempts"`
	BlockedUntil *time.Time `json:"blocked_until,omitempty"`
}

type Limiter struct {
	store       kvstore.Store
	maxAttempts int
	block       time.Duration
	now         func() time.Time
}

func New(store kvstore.Store, maxAttempts int, block time.Duration) *Limiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if block <= 0 {
		block = DefaultBlock
	}
	return &Limiter{
		store:       store,
		maxAttempts: maxAttempts,
		block:       block,
		now:         time.Now,
	}
}

// Allow reports whether the client may attempt a login. Once a block window
// has elapsed the counter resets to zero as a side effect of the check.
func (l *Limiter) Allow(key string) bool {
	s := l.get(key)

	if s.BlockedUntil != nil {
		if s.BlockedUntil.After(l.now()) {
			return false
		}
		l.Reset(key)
		return true
	}

	return s.Attempts < l.maxAttempts
}

// Fail records one failed attempt; reaching the threshold starts the block
// window. Returns the number of attempts left before blocking.
func (l *Limiter) Fail(key string) int {
	s := l.get(key)
	s.Attempts++
	if s.Attempts >= l.maxAttempts {
		until := l.now().Add(l.block)
		s.BlockedUntil = &until
	}
	l.put(key, s)

	return l.remaining(s)
}

// Reset clears the counter, on successful login or after the window lapses.
func (l *Limiter) Reset(key string) {
	l.store.Delete(l.storageKey(key))
}

// Remaining is the attempts-left figure shown under the login form.
func (l *Limiter) Remaining(key string) int {
	return l.remaining(l.get(key))
}

// BlockedFor returns how long the client stays blocked, zero when not blocked.
func (l *Limiter) BlockedFor(key string) time.Duration {
	s := l.get(key)
	if s.BlockedUntil == nil {
		return 0
	}
	d := s.BlockedUntil.Sub(l.now())
	if d < 0 {
		return 0
	}
	return d
}

func (l *Limiter) remaining(s state) int {
	left := l.maxAttempts - s.Attempts
	if left < 0 {
		return 0
	}
	return left
}

func (l *Limiter) get(key string) state {
	raw, ok := l.store.Get(l.storageKey(key))
	if !ok {
		return state{}
	}
	var s state
	if err := json.Unmarshal(raw, &s); err != nil {
		return state{}
	}
	return s
}

func (l *Limiter) put(key string, s state) {
	raw, _ := json.Marshal(s)
	// Attempt counters outlive a single block window so repeated abuse keeps
	// re-blocking; two windows is plenty.
	l.store.Set(l.storageKey(key), raw, 2*l.block)
}

func (l *Limiter) storageKey(key string) string {
	return "gallery_auth_attempts:" + key
}
