package cache

import (
	"sync"
	"time"
)

var _ Cache = (*MapCache)(nil)

// MapCache is a plain map cache for tests. It ignores ttl.
type MapCache struct {
	cache map[string][]byte
	mutex sync.Mutex

	Sets int
}

func NewMapCache() *MapCache {
	return &MapCache{
		cache: make(map[string][]byte),
	}
}

func (mc *MapCache) Get(key string) ([]byte, bool) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	val, ok := mc.cache[key]
	return val, ok
}

func (mc *MapCache) Set(key string, value []byte, _ time.Duration) bool {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.cache[key] = value
	mc.Sets++
	return true
}

func (mc *MapCache) Clear() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.cache = make(map[string][]byte)
}
