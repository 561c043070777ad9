package description

import "container/list"

// DefaultCacheCapacity bounds the result cache when no explicit capacity
// is configured.
const DefaultCacheCapacity = 512

// resultCache memoizes lookup outcomes keyed by the normalized query.
// A nil description is a first-class entry recording "no match", so
// repeated misses for the same data point shape stay O(1).
//
// Eviction is strict least-recently-used: a hit refreshes the entry's
// recency, and inserting beyond capacity evicts the coldest entry.
//
// The cache is a pure memoization layer; the Registry clears it wholesale
// on every mutation so its content never diverges from an uncached
// lookup. Not safe for concurrent use on its own.
type resultCache struct {
	capacity int
	entries  map[Query]*list.Element
	order    *list.List // front = most recently used
}

type cacheEntry struct {
	key  Query
	desc *StaticDescription // nil records an explicit no-match
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &resultCache{
		capacity: capacity,
		entries:  make(map[Query]*list.Element),
		order:    list.New(),
	}
}

// get returns the cached outcome for key and whether it was present,
// marking the entry most recently used on a hit.
func (c *resultCache) get(key Query) (*StaticDescription, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).desc, true
}

// put stores the outcome for key, evicting the least-recently-used entry
// when the cache is full.
func (c *resultCache) put(key Query, desc *StaticDescription) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).desc = desc
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, desc: desc})
}

// clear drops every entry.
func (c *resultCache) clear() {
	c.entries = make(map[Query]*list.Element)
	c.order.Init()
}

// len returns the number of cached entries.
func (c *resultCache) len() int {
	return c.order.Len()
}
