package usecase

import (
	"context"
	"time"
)

// Cache is the memoization surface usecases depend on. Implementations
// may degrade to no-ops; correctness never depends on a hit.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
