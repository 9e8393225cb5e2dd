// pkg/memcache/geocode_cache.go
package memcache

import (
	"sync"
	"time"
)

// GeocodeCache memoizes geocoding lookups per query string. Place names
// repeat across views of the same itinerary, and upstream quota is the scarce
// resource here.
type GeocodeCache interface {
	Get(query string) (lat, lng float64, ok bool)
	Set(query string, lat, lng float64, ttl time.Duration)
}

type coordEntry struct {
	lat, lng  float64
	expiresAt time.Time
}

type geocodeCache struct {
	mu   sync.RWMutex
	data map[string]coordEntry
}

func NewGeocodeCache() GeocodeCache {
	return &geocodeCache{data: make(map[string]coordEntry)}
}

func (c *geocodeCache) Get(query string) (float64, float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[query]
	if !ok || time.Now().After(e.expiresAt) {
		return 0, 0, false
	}
	return e.lat, e.lng, true
}

func (c *geocodeCache) Set(query string, lat, lng float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[query] = coordEntry{lat: lat, lng: lng, expiresAt: time.Now().Add(ttl)}

	// Opportunistic cleanup once the map grows past a few thousand queries.
	if len(c.data) > 4096 {
		now := time.Now()
		for k, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, k)
			}
		}
	}
}
