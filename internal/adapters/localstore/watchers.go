// Package localstore provides the process-local key/value stores backing
// the cash adjustment.
package localstore

import "sync"

// watchers fans change signals out to per-key subscribers. A key of ""
// notifies every subscriber.
type watchers struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]watcher
}

type watcher struct {
	key string
	ch  chan struct{}
}

func newWatchers() *watchers {
	return &watchers{subs: make(map[int]watcher)}
}

func (w *watchers) add(key string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = watcher{key: key, ch: ch}
	w.mu.Unlock()

	return ch, func() {
		w.mu.Lock()
		s, ok := w.subs[id]
		delete(w.subs, id)
		w.mu.Unlock()
		if ok {
			close(s.ch)
		}
	}
}

// notify signals the subscribers of key without blocking; a pending
// signal already covers the new change.
func (w *watchers) notify(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.subs {
		if key != "" && s.key != key {
			continue
		}
		select {
		case s.ch <- struct{}{}:
		default:
		}
	}
}

func (w *watchers) closeAll() {
	w.mu.Lock()
	subs := w.subs
	w.subs = make(map[int]watcher)
	w.mu.Unlock()
	for _, s := range subs {
		close(s.ch)
	}
}
