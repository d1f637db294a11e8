package store

import (
	"context"
	"sync"
)

// Backend is a durable key-value store holding slot values.
type Backend interface {
	// Get returns the value under key. found is false when the key has never
	// been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put replaces the value under key.
	Put(ctx context.Context, key, value string) error

	Close() error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*Redis)(nil)
	_ Backend = (*Memory)(nil)
)

// Memory is a Backend held in process memory.
//
// Thread-safety: Memory is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
