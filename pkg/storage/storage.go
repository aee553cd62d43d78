// Package storage provides the key-value persistence used by the contract
// workflow. Values are opaque bytes; callers own serialization.
package storage

import "context"

// Store is a minimal key-value port. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
