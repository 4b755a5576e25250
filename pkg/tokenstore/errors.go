package tokenstore

import "errors"

var (
	// ErrKeyNotFound indicates no value is stored for the requested key.
	ErrKeyNotFound = errors.New("tokenstore.key_not_found")

	// ErrInvalidKey indicates a key outside the fixed key set.
	ErrInvalidKey = errors.New("tokenstore.invalid_key")
)
