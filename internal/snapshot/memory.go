package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is a bounded in-process store. When full, the oldest entry is
// evicted.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	data     map[string][]byte
	order    []string
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryStore{
		capacity: capacity,
		data:     make(map[string][]byte, capacity),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		if len(m.order) >= m.capacity {
			delete(m.data, m.order[0])
			m.order = m.order[1:]
		}
		m.order = append(m.order, key)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
