package storage

import "sync"

// lruCache is a bounded least-recently-used cache of raw values
type lruCache struct {
	mutex    sync.Mutex
	capacity int
	entries  map[string]*cacheEntry
	head     *cacheEntry
	tail     *cacheEntry
}

type cacheEntry struct {
	key   string
	value []byte
	prev  *cacheEntry
	next  *cacheEntry
}

func newLRUCache(capacity int) *lruCache {
	if capacity <= 0 {
		capacity = 100
	}

	c := &lruCache{
		capacity: capacity,
		entries:  make(map[string]*cacheEntry, capacity),
		head:     &cacheEntry{},
		tail:     &cacheEntry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

func (c *lruCache) get(key string) ([]byte, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.unlink(e)
	c.pushFront(e)
	return append([]byte(nil), e.value...), true
}

func (c *lruCache) put(key string, value []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	value = append([]byte(nil), value...)
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.unlink(e)
		c.pushFront(e)
		return
	}

	e := &cacheEntry{key: key, value: value}
	c.entries[key] = e
	c.pushFront(e)

	if len(c.entries) > c.capacity {
		last := c.tail.prev
		c.unlink(last)
		delete(c.entries, last.key)
	}
}

func (c *lruCache) remove(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if e, ok := c.entries[key]; ok {
		c.unlink(e)
		delete(c.entries, key)
	}
}

func (c *lruCache) len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

func (c *lruCache) pushFront(e *cacheEntry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *lruCache) unlink(e *cacheEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}
