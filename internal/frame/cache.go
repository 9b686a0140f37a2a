package frame

import (
	"context"
	"time"
)

// Cache is the read-side cache contract. Implemented by the redis client;
// a nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}
