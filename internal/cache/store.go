package cache

import (
	"context"
	"time"
)

// Store keeps JSON-encodable values under string keys with a TTL. Get
// reports false on a miss.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
