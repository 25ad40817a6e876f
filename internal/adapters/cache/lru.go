package cache

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/baditaflorin/go_word2num/internal/ports"
)

// DefaultSize is the default number of memoised matches.
const DefaultSize = 4096

// LRUCache is a bounded, concurrency-safe match cache.
type LRUCache struct {
	cache *lru.Cache[string, ports.CachedMatch]
}

// NewLRUCache creates a cache holding at most size matches.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	c, err := lru.New[string, ports.CachedMatch](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: c}, nil
}

var _ ports.MatchCache = (*LRUCache)(nil)

// Get returns the match stored under key.
func (c *LRUCache) Get(key string) (ports.CachedMatch, bool) {
	return c.cache.Get(key)
}

// Add stores match under key, evicting the least recently used entry when full.
func (c *LRUCache) Add(key string, match ports.CachedMatch) {
	c.cache.Add(key, match)
}

// Len returns the number of stored matches.
func (c *LRUCache) Len() int {
	return c.cache.Len()
}
