package client

import (
	"strings"
	"sync"
)

// readCache keeps raw bodies of successful reads, keyed "<operation> <url>".
type readCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newReadCache() *readCache {
	return &readCache{entries: map[string][]byte{}}
}

func cacheKey(op, url string) string {
	return op + " " + url
}

func (c *readCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	return b, ok
}

func (c *readCache) put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = body
}

// invalidate drops every entry of the named operations, whatever their parameters.
func (c *readCache) invalidate(ops ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, op := range ops {
			if strings.HasPrefix(key, op+" ") {
				delete(c.entries, key)
				break
			}
		}
	}
}

func (c *readCache) has(op string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, op+" ") {
			return true
		}
	}
	return false
}
