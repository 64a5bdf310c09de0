package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by id or username matches
	// no stored account.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSessionNotFound is returned when no session reference is stored,
	// i.e. no account is logged in.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level storage operation errors. These are wrapped by repository
// methods when a key/value operation or document (de)serialization fails.
var (
	// ErrExecutingQuery is returned when reading a key from the backing
	// store fails at the driver level.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when a write or delete statement
	// against the backing store fails at the driver level.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrDecodingDocument is returned when a stored JSON document cannot
	// be unmarshalled into its model type.
	ErrDecodingDocument = errors.New("failed to decode stored document")

	// ErrEncodingDocument is returned when a model cannot be marshalled
	// for storage.
	ErrEncodingDocument = errors.New("failed to encode document")
)
