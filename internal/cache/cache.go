package cache

import "time"

// Cache stores opaque byte values, usually marshalled JSON responses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) bool
	Clear()
}
