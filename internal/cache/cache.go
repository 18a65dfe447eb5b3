package cache

import (
	"sync"
	"time"
)

// TTL constants for different data classes
const (
	// Static data - never changes unless hardware swapped
	TTLStatic = 24 * time.Hour

	// Slow-moving - sysfs device descriptors
	TTLSlow = 1 * time.Hour
)

// Entry holds a cached value with expiration
type Entry struct {
	Value     interface{}
	ExpiresAt time.Time
}

// IsExpired returns true if the entry has expired
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Cache provides thread-safe TTL-based caching
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates a new cache instance
func New() *Cache {
	return &Cache{
		entries: make(map[string]*Entry),
	}
}

// Get retrieves a value from cache, returns nil if expired or not found
func (c *Cache) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || entry.IsExpired() {
		return nil
	}
	return entry.Value
}

// Set stores a value with the given TTL
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &Entry{
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// SetStatic stores static data (very long TTL)
func (c *Cache) SetStatic(key string, value interface{}) {
	c.Set(key, value, TTLStatic)
}

// SetSlow stores slow-moving data
func (c *Cache) SetSlow(key string, value interface{}) {
	c.Set(key, value, TTLSlow)
}

// Delete removes an entry from cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries from cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Entry)
}

// Global cache instance
var global *Cache
var once sync.Once

// Global returns the global cache instance
func Global() *Cache {
	once.Do(func() {
		global = New()
	})
	return global
}
