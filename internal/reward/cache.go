package reward

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

type cachedCatalog struct {
	Rewards  []domain.Reward
	CachedAt time.Time
}

// catalogCache holds each class's full reward list. Every Invalidate bumps
// the class generation so a list read before a mutation cannot be stored
// after it.
type catalogCache struct {
	lru *expirable.LRU[string, *cachedCatalog]

	mu          sync.Mutex
	generations map[string]uint64
}

func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru:         expirable.NewLRU[string, *cachedCatalog](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

// Get returns a copy of the cached catalog for classID
func (c *catalogCache) Get(classID string) ([]domain.Reward, bool) {
	entry, found := c.lru.Get(classID)
	if !found {
		return nil, false
	}
	return append([]domain.Reward(nil), entry.Rewards...), true
}

// Generation is read before loading a catalog and handed back to SetIfCurrent
func (c *catalogCache) Generation(classID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[classID]
}

// SetIfCurrent stores rewards unless classID was invalidated since gen was read
func (c *catalogCache) SetIfCurrent(classID string, gen uint64, rewards []domain.Reward) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[classID] != gen {
		return false
	}
	c.lru.Add(classID, &cachedCatalog{
		Rewards:  append([]domain.Reward(nil), rewards...),
		CachedAt: time.Now(),
	})
	return true
}

func (c *catalogCache) Invalidate(classID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[classID]++
	c.lru.Remove(classID)
}

func (c *catalogCache) Len() int {
	return c.lru.Len()
}
