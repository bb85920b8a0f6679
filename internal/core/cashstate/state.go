// Package cashstate holds the manually declared cash-in-hand value shared
// by every consumer of the same local store.
package cashstate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Store is the local key/value persistence behind the state. Watch
// delivers a signal whenever key may have changed, including changes made
// by other processes sharing the store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Watch(key string) (<-chan struct{}, func())
}

// State is the injectable cash adjustment. A State without a store always
// reads zero and ignores writes.
type State struct {
	store  Store
	key    string
	logger *slog.Logger

	mu     sync.RWMutex
	value  decimal.Decimal
	subs   map[int]func(decimal.Decimal)
	nextID int

	stopWatch func()
	done      chan struct{}
}

// New loads the current value from store and starts following its change
// notifications. store may be nil.
func New(ctx context.Context, store Store, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	s := &State{
		store:  store,
		key:    domain.CashAdjustmentKey,
		logger: logger,
		value:  decimal.Zero,
		subs:   make(map[int]func(decimal.Decimal)),
		done:   make(chan struct{}),
	}
	if store == nil {
		logger.Warn("Local store unavailable, cash adjustment fixed at zero")
		close(s.done)
		return s
	}

	s.value = s.read(ctx)
	changes, stop := store.Watch(s.key)
	s.stopWatch = stop
	go s.follow(changes)
	return s
}

// Value returns the last known cash adjustment.
func (s *State) Value(_ context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set persists v, rounded to cents, and broadcasts it to subscribers.
func (s *State) Set(ctx context.Context, v decimal.Decimal) (decimal.Decimal, error) {
	if s.store == nil {
		return decimal.Zero, nil
	}
	v = v.Round(2)
	if err := s.store.Set(ctx, s.key, v.String()); err != nil {
		return s.Value(ctx), fmt.Errorf("failed to persist cash adjustment: %w", err)
	}
	s.apply(v)
	return v, nil
}

// Subscribe registers fn to be called with every new value. The returned
// function cancels the subscription.
func (s *State) Subscribe(fn func(decimal.Decimal)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close stops following store notifications.
func (s *State) Close() {
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
	<-s.done
}

// Resync re-reads the store and broadcasts the value if it changed.
func (s *State) Resync(ctx context.Context) {
	if s.store == nil {
		return
	}
	s.apply(s.read(ctx))
}

func (s *State) follow(changes <-chan struct{}) {
	defer close(s.done)
	for range changes {
		s.Resync(context.Background())
	}
}

func (s *State) read(ctx context.Context) decimal.Decimal {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("Failed to read cash adjustment, using zero", slog.String("error", err.Error()))
		return decimal.Zero
	}
	if !ok {
		return decimal.Zero
	}
	return ParseValue(raw)
}

func (s *State) apply(v decimal.Decimal) {
	s.mu.Lock()
	if s.value.Equal(v) {
		s.mu.Unlock()
		return
	}
	s.value = v
	subs := make([]func(decimal.Decimal), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// ParseValue decodes a stored cash adjustment. Absent or malformed values
// decode to zero.
func ParseValue(raw string) decimal.Decimal {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return v
}
