package session

import "errors"

var (
	// ErrNotFound indicates the session code is unknown both remotely and in
	// the local cache.
	ErrNotFound = errors.New("session not found")

	// ErrExpired indicates the session is past its validity window. The
	// local cache entry is evicted when this is returned.
	ErrExpired = errors.New("session expired")

	// ErrBadRecord indicates a session payload failed schema validation at
	// the deserialization boundary.
	ErrBadRecord = errors.New("malformed session record")
)
