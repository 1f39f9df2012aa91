package ports

import "context"

// SessionStore is the key-value store holding the signed-in operator's token
// and profile. Get returns domain.ErrSessionKeyNotFound for a missing key.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
