package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. Trend
// responses and filter-option lists are cached as their JSON encoding.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
