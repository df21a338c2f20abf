// Package storage implements spec.md §4.3 (C3): the store contract's default
// backend, an in-memory last-writer-wins map, plus a sharded wrapper that
// routes each frame id to one of several backing stores (spec.md §5).
package storage

import (
	"context"
	"sync"

	"github.com/moinsen-dev/jscpd2025/core"
)

// Memory is the default store: a mutex-protected map from frame id to its
// most recent occurrence. Concurrent access is serialized, matching spec.md
// §4.3's requirement that a single store be safe for one file's matching
// pass at a time.
type Memory struct {
	mu     sync.Mutex
	data   map[uint64]core.StoreRecord
	closed bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[uint64]core.StoreRecord)}
}

func (m *Memory) Get(_ context.Context, id uint64) (core.StoreRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return core.StoreRecord{}, false, core.StoreUnavailableError("memory.Get", errClosed)
	}
	rec, ok := m.data[id]
	return rec, ok, nil
}

func (m *Memory) Set(_ context.Context, id uint64, rec core.StoreRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return core.StoreUnavailableError("memory.Set", errClosed)
	}
	m.data[id] = rec
	return nil
}

// Close releases the store's backing map. Idempotent, per spec.md §4.3.
func (m *Memory) Close(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.data = nil
	return nil
}

var errClosed = errClosedType{}

type errClosedType struct{}

func (errClosedType) Error() string { return "store is closed" }
