// Package cache provides a small TTL-bounded LRU cache.
package cache

import (
	"sync"
	"time"

	"github.com/guttosm/label-service/internal/metrics"
)

// TTLCache is a string-keyed LRU cache whose entries also expire after a
// fixed TTL. It is safe for concurrent use. Hits, misses and evictions are
// reported to metrics.CacheOperationsTotal under the cache name. Call Stop
// to end the cleanup goroutine.
type TTLCache[V any] struct {
	name     string
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*entry[V]
	head     *entry[V]
	tail     *entry[V]
	stopCh   chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

// New creates a cache holding at most capacity entries for ttl each.
// name labels the cache in metrics.
func New[V any](name string, capacity int, ttl time.Duration) *TTLCache[V] {
	if capacity <= 0 {
		capacity = 1
	}
	c := &TTLCache[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry[V], capacity),
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
	go c.startCleanup(cleanupInterval(ttl))
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > time.Minute {
		return time.Minute
	}
	return ttl
}

// Get returns the value for key if present and not expired.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.removeEntry(e)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		return zero, false
	}

	c.moveToFront(e)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return e.value, true
}

// Set adds or refreshes key. The least recently used entry is evicted when
// the cache is full.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = c.now().Add(c.ttl)
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: c.now().Add(c.ttl)}
	c.items[key] = e
	c.addToFront(e)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
}

// Stop ends the background cleanup. It is safe to call more than once.
func (c *TTLCache[V]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *TTLCache[V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *TTLCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.now()
	for _, e := range c.items {
		if current.After(e.expiresAt) {
			c.removeEntry(e)
		}
	}
}

func (c *TTLCache[V]) removeEntry(e *entry[V]) {
	delete(c.items, e.key)
	c.remove(e)
}

func (c *TTLCache[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *TTLCache[V]) addToFront(e *entry[V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *TTLCache[V]) remove(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
