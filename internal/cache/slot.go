// Package cache provides a minimal single-slot TTL cache used for the
// catalog hot paths (popular page 1, airing page 1, genre list). Each slot
// holds one value plus its fetch timestamp; the value is served while
// now - timestamp < TTL and refreshed through the supplied fetch function
// otherwise. Concurrent refreshes of the same slot are collapsed with
// singleflight so a burst of requests triggers at most one upstream call.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Option configures a Slot.
type Option[T any] func(*Slot[T])

// WithClock injects the time source used for TTL checks. Intended for tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(s *Slot[T]) { s.now = now }
}

// Slot caches a single value with a TTL. The zero value is not usable; use
// NewSlot. A Slot is safe for concurrent use.
//
// Failure semantics: when a refresh fails, the previously cached value (if
// any) is left untouched and the error is propagated to every waiter of that
// refresh. A later call may serve the stale value only after a successful
// refresh replaces it; expired values are never returned.
type Slot[T any] struct {
	ttl time.Duration
	now func() time.Time

	sf singleflight.Group

	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	has       bool
}

// NewSlot creates a Slot with the given TTL.
func NewSlot[T any](ttl time.Duration, opts ...Option[T]) *Slot[T] {
	s := &Slot[T]{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached value when it is still valid, or refreshes the slot
// by calling fetch. Concurrent callers during a refresh share a single fetch
// invocation and its outcome.
func (s *Slot[T]) Get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := s.peek(); ok {
		return v, nil
	}

	v, err, _ := s.sf.Do("slot", func() (any, error) {
		// A previous flight may have refreshed the slot while this caller
		// was waiting for the singleflight lock.
		if v, ok := s.peek(); ok {
			return v, nil
		}
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.value = val
		s.fetchedAt = s.now()
		s.has = true
		s.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops the cached value, forcing the next Get to refresh.
// Exposed for tests and administrative resets.
func (s *Slot[T]) Invalidate() {
	s.mu.Lock()
	s.has = false
	var zero T
	s.value = zero
	s.mu.Unlock()
}

// peek returns the cached value when present and not expired.
func (s *Slot[T]) peek() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.has || s.now().Sub(s.fetchedAt) >= s.ttl {
		var zero T
		return zero, false
	}
	return s.value, true
}
