package store

import "errors"

// ErrKeyNotFound is returned by Read when no blob exists under the key.
// Absence is an expected state for a fresh tracker, not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value blob interface all tracker state persists through.
// Implementations must make Write atomic from the reader's perspective.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}
