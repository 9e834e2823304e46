package eventcache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// EventCache remembers message ids for a while so that webhook batches the
// platform redelivers are not answered twice.
type EventCache struct {
	cache *cache.Cache
}

// NewEventCache creates a cache that forgets ids after ttl.
func NewEventCache(ttl time.Duration) *EventCache {
	return &EventCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

// FirstSeen records id and reports whether it was not already recorded.
// Empty ids are never recorded.
func (e *EventCache) FirstSeen(id string) bool {
	if id == "" {
		return true
	}
	// Add fails when the key exists and has not expired.
	return e.cache.Add(id, struct{}{}, cache.DefaultExpiration) == nil
}

// Len returns the number of ids currently remembered, including expired ids
// that have not been cleaned up yet.
func (e *EventCache) Len() int {
	return e.cache.ItemCount()
}
