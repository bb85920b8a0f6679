// Package snapshot keeps the last good copy of the full entry list and
// discards fetch results that complete after a newer fetch has landed.
package snapshot

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads every entry from the persistence layer.
type FetchFunc func(ctx context.Context) ([]domain.Entry, error)

// Loader serves the entry list to report consumers. Every fetch is tagged
// with an increasing sequence number and only the newest completed fetch
// is kept.
type Loader struct {
	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time

	seq   atomic.Uint64
	group singleflight.Group

	mu       sync.RWMutex
	entries  []domain.Entry
	applied  uint64
	loadedAt time.Time
	stale    bool

	// invalidatedAt is the last sequence number issued before the latest
	// Invalidate. Fetches at or below it may predate the write.
	invalidatedAt uint64
	epoch         uint64
}

// Option configures a Loader.
type Option func(*Loader)

// WithTTL bounds how long a loaded list is served before refetching. A
// zero TTL refetches on every call.
func WithTTL(ttl time.Duration) Option {
	return func(l *Loader) {
		l.ttl = ttl
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

func NewLoader(fetch FetchFunc, opts ...Option) *Loader {
	l := &Loader{
		fetch: fetch,
		ttl:   30 * time.Second,
		now:   time.Now,
		stale: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Entries returns the current list, fetching it when missing, stale or
// expired. Concurrent callers share one fetch.
func (l *Loader) Entries(ctx context.Context) ([]domain.Entry, error) {
	l.mu.RLock()
	fresh := !l.stale && l.ttl > 0 && l.now().Sub(l.loadedAt) < l.ttl
	entries := l.entries
	epoch := l.epoch
	l.mu.RUnlock()
	if fresh {
		return slices.Clone(entries), nil
	}

	v, err, _ := l.group.Do("entries:"+strconv.FormatUint(epoch, 10), func() (any, error) {
		return l.Refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]domain.Entry)), nil
}

// Refresh fetches the list unconditionally. When a newer fetch completed
// first, its result is kept and returned instead. A failed fetch leaves
// the previous list in place. A fetch that started before the latest
// Invalidate is kept but leaves the list stale.
func (l *Loader) Refresh(ctx context.Context) ([]domain.Entry, error) {
	seq := l.seq.Add(1)
	entries, err := l.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq > l.applied {
		l.entries = slices.Clone(entries)
		l.applied = seq
		l.loadedAt = l.now()
		if seq > l.invalidatedAt {
			l.stale = false
		}
	}
	return slices.Clone(l.entries), nil
}

// Invalidate forces the next Entries call to refetch. Fetches already in
// flight cannot satisfy it, and later callers do not join them.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.stale = true
	l.invalidatedAt = l.seq.Load()
	l.epoch++
	l.mu.Unlock()
}

// Generation returns the sequence number of the list currently held.
func (l *Loader) Generation() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.applied
}
