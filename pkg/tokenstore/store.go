package tokenstore

import "context"

// Key identifies one of the persisted auth values. The set of keys is fixed;
// stores persist exactly these three under a common namespace.
type Key string

const (
	// KeyAccessToken holds the short-lived bearer credential.
	KeyAccessToken Key = "auth_token"

	// KeyRefreshToken holds the longer-lived refresh credential.
	KeyRefreshToken Key = "refresh_token"

	// KeyUserData holds the serialized user snapshot.
	KeyUserData Key = "user_data"
)

// Keys returns all persisted keys. Clear removes exactly this set.
func Keys() []Key {
	return []Key{KeyAccessToken, KeyRefreshToken, KeyUserData}
}

// Store is a scoped key-value persistence facade for auth state. No TTL is
// tracked on stored values; token expiry is discovered reactively through a
// 401 response, never proactively.
type Store interface {
	// Get returns the value for the key, or ErrKeyNotFound.
	Get(ctx context.Context, key Key) (string, error)

	// Set stores the value for the key.
	Set(ctx context.Context, key Key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key Key) error

	// Clear removes all persisted auth keys as a set.
	Clear(ctx context.Context) error
}
