package store

import "sync"

// Memory is an in-process slot store. It backs ephemeral profiles and tests.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
	// FailWrites makes every WriteSlot return the given error when set.
	FailWrites error
}

// NewMemory creates an empty in-memory slot store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// ReadSlot returns a copy of the value stored under key.
func (m *Memory) ReadSlot(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// WriteSlot stores a copy of value under key.
func (m *Memory) WriteSlot(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.slots[key] = append([]byte(nil), value...)
	return nil
}
