// Package state implements the durable key-value store backing the client:
// the identity record and the ledger balance each live under their own key.
package state

import "context"

// Repository is a string-keyed durable store. Each entity occupies a single
// key; no multi-key atomicity is provided here (run multi-step mutations
// inside dbx.WithTx instead).
type Repository interface {
	// Get returns the value for key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key, overwriting any previous value. The
	// write is durable once Set returns.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
