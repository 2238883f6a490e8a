// Package cache provides the caching layer for the digit pipeline.
// Raw source bytes, converted digit sequences and walked point paths are
// each cached under their own key namespace so that expensive stages can
// be skipped independently.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Raw source data can change upstream
// (new genome revisions, fresh price data), so it expires. Digits and
// points are pure functions of their inputs and never go stale.
const (
	RawTTL    = 24 * time.Hour
	DigitsTTL = 0 // no expiry
	PointsTTL = 0 // no expiry
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
