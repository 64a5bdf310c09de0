// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

// Package crypto implements the credential-hashing primitives of the data
// layer: an adaptive bcrypt hasher plus verify-time recognition of the two
// legacy credential forms that may survive in stored account records.
package crypto

// PasswordHasher transforms plaintext passwords into stored credentials
// and checks plaintext against a stored credential.
type PasswordHasher interface {
	// Hash derives a stored credential from plaintext. Each call salts
	// independently, so equal passwords produce distinct credentials.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches stored. The second result
	// is true when the match succeeded against a legacy credential form
	// (raw plaintext or the old fixed-salt encoding); callers use it to
	// trigger the one-time upgrade to the current form.
	Verify(plaintext, stored string) (ok bool, legacy bool)
}
