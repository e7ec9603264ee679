// Package session owns the bearer token presented on authenticated
// requests: one live token, mirrored into durable client-side storage
// on every change.
package session

// TokenKey is the single storage key the token lives under.
const TokenKey = "auth_token"

// Store is durable string key/value storage for client-side state.
// Implementations may keep values in files, memory, or any other
// key-value backend.
type Store interface {
	// Get retrieves the value for the given key. It returns the value,
	// a boolean indicating whether the key was found, and an error if
	// the lookup itself failed.
	Get(key string) (value string, found bool, err error)

	// Set stores the value under the given key, overwriting any
	// previous value.
	Set(key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
