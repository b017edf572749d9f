package service

import (
	"sync"

	"medical-report-analyzer/internal/domain"
)

// boundedCache is a thread-safe, write-once analysis store. Keys are
// immutable once written and nothing is evicted within the process
// lifetime; inserts past capacity are dropped instead.
type boundedCache struct {
	mu       sync.RWMutex
	entries  map[string]string
	capacity int
}

// NewAnalysisCache creates a cache holding at most capacity entries.
// A capacity of zero disables caching entirely.
func NewAnalysisCache(capacity int) domain.AnalysisCache {
	return &boundedCache{
		entries:  make(map[string]string, capacity),
		capacity: capacity,
	}
}

func (c *boundedCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	analysis, ok := c.entries[key]
	return analysis, ok
}

func (c *boundedCache) Put(key string, analysis string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		// Write-once: the first analysis for a key wins.
		return
	}
	if len(c.entries) >= c.capacity {
		return
	}
	c.entries[key] = analysis
}

func (c *boundedCache) Enabled() bool {
	return c.capacity > 0
}
