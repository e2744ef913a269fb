// Package cache provides the TTL store injected into the pattern-index
// builder. Keeping it behind an interface avoids hidden process-wide state
// and lets deployments swap the implementation.
package cache

import "time"

// Store is a TTL key/value cache for built artifacts
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Flush()
}
