package cache

import (
	"errors"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Cache = (*FreeCache)(nil)

const megabyte = 1024 * 1024

type FreeCache struct {
	mainCache *freecache.Cache
}

// NewFreeCache creates an in-process cache of sizeMB megabytes.
func NewFreeCache(sizeMB int) *FreeCache {
	if sizeMB <= 0 {
		sizeMB = 10
	}
	return &FreeCache{
		mainCache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (fc *FreeCache) Get(key string) ([]byte, bool) {
	val, err := fc.mainCache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("free cache get [%s]: %s", key, err)
		}
		return nil, false
	}
	return val, true
}

// Set stores value under key. A ttl under one second never expires.
func (fc *FreeCache) Set(key string, value []byte, ttl time.Duration) bool {
	if err := fc.mainCache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		log.Errorf("free cache set [%s]: %s", key, err)
		return false
	}
	return true
}

func (fc *FreeCache) Clear() {
	fc.mainCache.Clear()
}
