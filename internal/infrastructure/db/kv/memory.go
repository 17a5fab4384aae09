package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store used by tests and as a last-resort fallback
// when no Redis is configured. Values survive only for the process lifetime.
type Memory struct {
	mu   sync.RWMutex
	data map[Key][]byte
	// FailWrites forces Set to report false; used to exercise the
	// write-failure containment path in tests.
	FailWrites bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[Key][]byte)}
}

func (m *Memory) Get(_ context.Context, key Key) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	return raw, ok
}

func (m *Memory) Set(_ context.Context, key Key, value []byte) bool {
	if m.FailWrites {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return true
}

func (m *Memory) Del(_ context.Context, key Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return true
}
