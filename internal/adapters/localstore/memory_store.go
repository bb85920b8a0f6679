package localstore

import (
	"context"
	"sync"

	"github.com/SscSPs/def_finance/internal/core/cashstate"
)

// MemoryStore keeps values in memory. Several consumers sharing one
// MemoryStore observe each other's writes.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	watchers *watchers
}

var _ cashstate.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		watchers: newWatchers(),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	m.watchers.notify(key)
	return nil
}

func (m *MemoryStore) Watch(key string) (<-chan struct{}, func()) {
	return m.watchers.add(key)
}

// Close releases every watcher.
func (m *MemoryStore) Close() error {
	m.watchers.closeAll()
	return nil
}
