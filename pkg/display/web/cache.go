package web

import "sync"

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a fixed size ring of encoded frames keyed by the hash
// of their pixels, so frames that come around again aren't
// compressed twice.
type cache struct {
	entries []cacheEntry
	idx     int
	sync.RWMutex
}

func newCache(size int) *cache {
	return &cache{
		entries: make([]cacheEntry, size),
	}
}

// get returns the encoded frame for hash.
func (c *cache) get(hash uint64) ([]byte, bool) {
	c.RLock()
	defer c.RUnlock()

	for _, e := range c.entries {
		if e.data != nil && e.hash == hash {
			return e.data, true
		}
	}

	return nil, false
}

// add stores output, evicting the oldest entry.
func (c *cache) add(hash uint64, output []byte) {
	if len(c.entries) == 0 {
		return
	}

	c.Lock()
	defer c.Unlock()

	c.entries[c.idx] = cacheEntry{hash: hash, data: output}
	c.idx = (c.idx + 1) % len(c.entries)
}
