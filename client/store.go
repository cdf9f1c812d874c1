package client

import "context"

// Store is the local video cache. Implementations must be safe for
// concurrent use; the bulk save pipeline may call Put from several
// workers.
type Store interface {
	// Exists reports whether a record with the id is cached.
	Exists(ctx context.Context, id string) (bool, error)
	// Get returns the cached record, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*VideoRecord, error)
	// Put inserts or replaces a record. Idempotent per id.
	Put(ctx context.Context, record *VideoRecord) error
	// List returns all cached records, most recently added first.
	List(ctx context.Context) ([]VideoRecord, error)
	// Delete removes a record. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
