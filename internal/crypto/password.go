// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// legacyFixedSalt is the application-wide salt of the pre-bcrypt credential
// scheme: stored credentials were base64("virtuoso_secure_salt_<password>").
// It exists only so records written by that scheme still verify and can be
// upgraded; new credentials never use it.
const legacyFixedSalt = "virtuoso_secure_salt"

// passwordHasher is the bcrypt-backed implementation of [PasswordHasher].
type passwordHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt
// work factor. Out-of-range costs are clamped by bcrypt itself to its
// default, so any value accepted by config validation is safe here.
func NewPasswordHasher(cost int) PasswordHasher {
	return &passwordHasher{cost: cost}
}

// Hash implements [PasswordHasher] using bcrypt with the configured cost.
// bcrypt generates a fresh per-credential salt on every call.
func (p *passwordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. The probe order is: current bcrypt
// form first, then the two legacy forms. A failed bcrypt comparison also
// covers stored values that are not bcrypt hashes at all, so legacy
// credentials simply fall through to the legacy checks.
func (p *passwordHasher) Verify(plaintext, stored string) (bool, bool) {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)); err == nil {
		return true, false
	}

	if constantTimeEquals(stored, plaintext) {
		return true, true
	}

	if constantTimeEquals(stored, legacyEncode(plaintext)) {
		return true, true
	}

	return false, false
}

// legacyEncode reproduces the pre-bcrypt credential encoding.
func legacyEncode(plaintext string) string {
	return base64.StdEncoding.EncodeToString([]byte(legacyFixedSalt + "_" + plaintext))
}

func constantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
