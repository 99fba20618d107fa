package generic

import (
	"container/list"
	"context"
	"sync"

	"github.com/bnema/lightbox/internal/logging"
)

// Cache provides a generic, size-bounded interface for caching any type of data.
// K is the key type (must be comparable), V is the value type.
// All operations are thread-safe.
//
// Design principles:
// - RAM-only: values live in memory, nothing is persisted
// - Read-through: GetOrLoad fills misses from a Loader
// - Bounded: the least recently used entry is evicted past capacity
type Cache[K comparable, V any] interface {
	// Get retrieves a value and marks it recently used
	Get(key K) (V, bool)

	// GetOrLoad returns the cached value or loads, stores and returns it
	GetOrLoad(ctx context.Context, key K) (V, error)

	// Set stores a value, evicting the oldest entry when full
	Set(key K, value V)

	// Delete removes a key
	Delete(key K)

	// Len returns the number of cached entries
	Len() int

	// Keys returns cached keys, most recently used first
	Keys() []K

	// Purge drops every entry
	Purge()
}

// Loader produces values for keys missing from the cache.
type Loader[K comparable, V any] interface {
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Load calls f(ctx, key).
func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// call tracks an in-flight load so concurrent misses on one key share it.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// LRUCache implements Cache[K, V] with a map and a recency list guarded by a mutex.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
	inflight map[K]*call[V]
	loader   Loader[K, V]

	// OnEvict, when set, is called outside the lock for every evicted entry.
	OnEvict func(key K, value V)
}

// NewLRUCache creates a cache holding at most capacity entries.
//
// Parameters:
//   - capacity: maximum number of entries; values below 1 are raised to 1
//   - loader: source for GetOrLoad misses; may be nil when only Get/Set are used
func NewLRUCache[K comparable, V any](capacity int, loader Loader[K, V]) *LRUCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		inflight: make(map[K]*call[V]),
		loader:   loader,
	}
}

// Capacity returns the maximum number of entries.
func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

// Get retrieves a value from the cache. Returns (value, true) if found,
// or (zero value, false) if not found. Never calls the loader.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// GetOrLoad returns the cached value for key, loading it on a miss.
// Concurrent callers missing on the same key wait for a single load.
// Failed loads are not cached.
func (c *LRUCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		v := el.Value.(*entry[K, V]).value
		c.mu.Unlock()
		return v, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.value, cl.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}
	if c.loader == nil {
		c.mu.Unlock()
		var zero V
		return zero, ErrNoLoader
	}

	cl := &call[V]{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.value, cl.err = c.loader.Load(ctx, key)

	c.mu.Lock()
	delete(c.inflight, key)
	var evicted []*entry[K, V]
	if cl.err == nil {
		evicted = c.storeLocked(key, cl.value)
	}
	c.mu.Unlock()
	close(cl.done)

	if cl.err != nil {
		logging.FromContext(ctx).Debug().Err(cl.err).Interface("key", key).Msg("cache load failed")
	}
	c.notifyEvicted(evicted)
	return cl.value, cl.err
}

// Set stores value under key and marks it most recently used.
func (c *LRUCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	evicted := c.storeLocked(key, value)
	c.mu.Unlock()
	c.notifyEvicted(evicted)
}

// Delete removes key from the cache. OnEvict is not called.
func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns the cached keys, most recently used first.
func (c *LRUCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}

// Purge drops every entry without calling OnEvict.
func (c *LRUCache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

func (c *LRUCache[K, V]) storeLocked(key K, value V) []*entry[K, V] {
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return nil
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})

	var evicted []*entry[K, V]
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		e := oldest.Value.(*entry[K, V])
		c.order.Remove(oldest)
		delete(c.items, e.key)
		evicted = append(evicted, e)
	}
	return evicted
}

func (c *LRUCache[K, V]) notifyEvicted(evicted []*entry[K, V]) {
	if c.OnEvict == nil {
		return
	}
	for _, e := range evicted {
		c.OnEvict(e.key, e.value)
	}
}
