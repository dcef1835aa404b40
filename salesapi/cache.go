package salesapi

import (
	"sync"
	"time"

	"app/models"
)

// Cache is a process-wide store for the last fetched order set.
// Entries expire after the configured TTL; concurrent requests inside
// the window all observe the same data without refetching.
type Cache struct {
	mu        sync.RWMutex
	data      []models.Order
	fetchedAt time.Time
	ttl       time.Duration
}

// NewCache creates a cache whose entries live for ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached orders if they are still fresh.
func (c *Cache) Get() ([]models.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.data, true
	}
	return nil, false
}

// Set stores a fetched order set and stamps it as fresh.
func (c *Cache) Set(orders []models.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = orders
	c.fetchedAt = time.Now()
}

// Clear drops the cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.fetchedAt = time.Time{}
}
