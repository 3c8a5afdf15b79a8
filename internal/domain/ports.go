package domain

import "context"

// Cache is the port for the quote cache. Get reports whether the key was
// present; a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
