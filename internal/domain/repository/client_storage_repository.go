package repository

import "context"

// ClientStorage is the per-client key-value store standing in for browser
// local storage. Values never expire; the last write wins.
type ClientStorage interface {
	Get(ctx context.Context, clientID, key string) (string, bool, error)
	Set(ctx context.Context, clientID, key, value string) error
	// SetIfAbsent stores value only when key is missing and returns whichever
	// value the key holds afterwards
	SetIfAbsent(ctx context.Context, clientID, key, value string) (string, error)
	Delete(ctx context.Context, clientID string, keys ...string) error
}
