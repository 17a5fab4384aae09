// Package kv implements the partitioned key-value storage layer. Every entity
// partition is one key holding a JSON-encoded array of records; repositories
// in this package own exactly one partition each.
//
// Storage faults are contained here: an absent or corrupt value reads as the
// caller's default, and a rejected write reports false. Neither ever
// propagates as an error.
package kv

import "context"

// Store is the storage port injected into every repository. Implementations
// must treat each key as an opaque JSON blob.
type Store interface {
	// Get returns the raw value for key, or ok=false when absent or when the
	// backend failed. Backend failures are logged by the implementation.
	Get(ctx context.Context, key Key) ([]byte, bool)
	// Set stores value under key and reports success.
	Set(ctx context.Context, key Key, value []byte) bool
	// Del removes key and reports success. Deleting an absent key succeeds.
	Del(ctx context.Context, key Key) bool
}
