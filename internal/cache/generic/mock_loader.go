package generic

import (
	"context"
	"sync"
)

// MockLoader is a mock implementation of Loader for testing.
// It's generic and thread-safe, suitable for testing LRUCache.
type MockLoader[K comparable, V any] struct {
	mu sync.Mutex

	// Behavior configuration
	LoadFunc func(ctx context.Context, key K) (V, error)

	// Call tracking
	LoadCalls []K
}

// NewMockLoader creates a new mock returning zero values.
func NewMockLoader[K comparable, V any]() *MockLoader[K, V] {
	return &MockLoader[K, V]{
		LoadFunc: func(ctx context.Context, key K) (V, error) {
			var zero V
			return zero, nil
		},
	}
}

// Load implements Loader.Load
func (m *MockLoader[K, V]) Load(ctx context.Context, key K) (V, error) {
	m.mu.Lock()
	m.LoadCalls = append(m.LoadCalls, key)
	m.mu.Unlock()

	return m.LoadFunc(ctx, key)
}

// GetLoadCallCount returns the number of times Load was called
func (m *MockLoader[K, V]) GetLoadCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.LoadCalls)
}

// GetLoadCalls returns a copy of the requested keys in call order
func (m *MockLoader[K, V]) GetLoadCalls() []K {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]K, len(m.LoadCalls))
	copy(out, m.LoadCalls)
	return out
}
