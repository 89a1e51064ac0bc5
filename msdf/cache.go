package msdf

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gogpu/svgmsdf/raster"
)

// DefaultCacheCapacity is the number of fields kept when NewCache is given
// a non-positive capacity.
const DefaultCacheCapacity = 32

// CacheKey identifies a generated field: the exact path data handed to the
// generator and the configuration it ran with.
type CacheKey struct {
	Path   string
	Config Config
}

// CacheStats holds cache counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
}

// Cache is a thread-safe LRU cache of generated fields.
//
// Buffers are copied on the way in and out, so callers may modify what
// they get back.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[CacheKey]*list.Element
	lru      *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	key     CacheKey
	buf     *raster.Buffer
	metrics Metrics
}

// NewCache creates a cache holding at most capacity fields.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[CacheKey]*list.Element),
		lru:      list.New(),
	}
}

// Get returns a copy of the cached field and its metrics.
func (c *Cache) Get(key CacheKey) (*raster.Buffer, *Metrics, bool) {
	c.mu.Lock()
	el, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		return nil, nil, false
	}
	c.lru.MoveToFront(el)
	e := el.Value.(*cacheEntry)
	buf, metrics := e.buf.Clone(), e.metrics
	c.mu.Unlock()

	c.hits.Add(1)
	return buf, &metrics, true
}

// Set stores a copy of buf. The least recently used field is evicted when
// the cache is full.
func (c *Cache) Set(key CacheKey, buf *raster.Buffer, metrics *Metrics) {
	e := &cacheEntry{key: key, buf: buf.Clone()}
	if metrics != nil {
		e.metrics = *metrics
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value = e
		c.lru.MoveToFront(el)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(e)
}

// Len returns the number of cached fields.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear removes all fields. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]*list.Element)
	c.lru.Init()
}

// Stats returns the current counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       c.Len(),
	}
}
