package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the uniform entry lifetime. Every key ages against the same
// TTL; there is no per-key override and no background sweep — staleness is
// decided lazily on read.
const DefaultTTL = 5 * time.Minute

type entry struct {
	payload  any
	captured time.Time
}

// Store is a keyed in-memory cache with a single fixed TTL. Writes replace
// entries wholesale, so a concurrent reader never observes a partially
// updated payload. Entries are dropped only by overwrite or process exit.
type Store struct {
	ttl   time.Duration
	nowFn func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
}

// Option customises a Store.
type Option func(*Store)

// WithTTL overrides DefaultTTL. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock injects the time source used for capture stamps and validity
// checks. Tests use it to step entries across the TTL boundary.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// New constructs an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		ttl:     DefaultTTL,
		nowFn:   time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL reports the entry lifetime applied to every key.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the payload and capture time stored under key. Presence alone
// does not imply freshness; callers gate reads with IsValid.
func (s *Store) Get(key string) (any, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, time.Time{}, false
	}
	return e.payload, e.captured, true
}

// Put stores payload under key, stamping it with the current time and
// overwriting any previous entry.
func (s *Store) Put(key string, payload any) {
	now := s.nowFn()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{payload: payload, captured: now}
}

// IsValid reports whether key holds an entry younger than the TTL.
func (s *Store) IsValid(key string) bool {
	now := s.nowFn()
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	return now.Sub(e.captured) < s.ttl
}

// Len reports the number of entries currently held, stale ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
