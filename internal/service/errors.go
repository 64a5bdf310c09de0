package service

import "errors"

// Sentinel errors returned by the service layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDataProvided is returned when a required argument (e.g.
	// username or password) is empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single authentication-failure outcome
	// of Login. It covers both unknown usernames and wrong passwords so
	// account existence cannot be probed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameAlreadyTaken is returned by Register when an account
	// with the requested username already exists.
	ErrUsernameAlreadyTaken = errors.New("username already taken")

	// ErrNoActiveSession is returned by CurrentUser when no session
	// reference is stored or the referenced account has been deleted.
	ErrNoActiveSession = errors.New("no active session")

	// ErrContactGroupNotFound is returned by contact-group operations
	// addressing a group id that does not exist.
	ErrContactGroupNotFound = errors.New("contact group was not found")

	// ErrConfigItemNotFound is returned by item-level configuration
	// operations addressing an item id that does not exist.
	ErrConfigItemNotFound = errors.New("config item was not found")

	// ErrInvalidBackupDocument is returned by Restore when the supplied
	// document fails validation. No store is modified in that case.
	ErrInvalidBackupDocument = errors.New("invalid backup document")
)
