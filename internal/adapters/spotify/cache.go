package spotify

import (
	"sync"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/metrics"
)

type artistKey struct {
	name   string
	market domain.Market
}

// artistIDCache memoizes artist name resolution per market for the process
// lifetime. Entries are write-once and never evicted.
type artistIDCache struct {
	mu  sync.RWMutex
	ids map[artistKey]string
}

func newArtistIDCache() *artistIDCache {
	return &artistIDCache{ids: make(map[artistKey]string)}
}

func (c *artistIDCache) get(name string, market domain.Market) (string, bool) {
	c.mu.RLock()
	id, ok := c.ids[artistKey{name, market}]
	c.mu.RUnlock()

	if ok {
		metrics.ArtistCacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.ArtistCacheLookups.WithLabelValues("miss").Inc()
	}
	return id, ok
}

// putIfAbsent stores id unless a value is already present and returns the stored value.
func (c *artistIDCache) putIfAbsent(name string, market domain.Market, id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := artistKey{name, market}
	if existing, ok := c.ids[key]; ok {
		return existing
	}
	c.ids[key] = id
	return id
}

func (c *artistIDCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}
