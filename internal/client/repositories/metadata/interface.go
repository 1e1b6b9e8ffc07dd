// Package metadata stores small string values in the local SQLite database,
// one row per key.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value for key; found is false when no row exists.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
