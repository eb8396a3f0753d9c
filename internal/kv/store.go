// Package kv defines the key-value store boundary the hub services persist
// through. Values are JSON documents; the store guarantees per-key
// last-write-wins only, no multi-key transactions.
package kv

import "context"

// Store is an abstract string-key to JSON-value mapping.
type Store interface {
	// Get unmarshals the value at key into dest. It returns false with a
	// nil error when the key does not exist.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set marshals value and writes it at key, replacing any prior value.
	Set(ctx context.Context, key string, value any) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns the raw JSON values of every key sharing prefix.
	// Order is unspecified.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
