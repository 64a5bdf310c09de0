// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_ProducesBcryptCredential(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	stored, err := h.Hash("Passw0rd!")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "$2a$"), "expected a bcrypt credential, got %q", stored)
	assert.NotEqual(t, "Passw0rd!", stored)
}

func TestHash_SaltsPerCall(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("Passw0rd!")
	require.NoError(t, err)
	second, err := h.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "equal passwords must hash to distinct credentials")
}

func TestVerify_CurrentForm(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	stored, err := h.Hash("Passw0rd!")
	require.NoError(t, err)

	ok, legacy := h.Verify("Passw0rd!", stored)
	assert.True(t, ok)
	assert.False(t, legacy)

	ok, legacy = h.Verify("wrong", stored)
	assert.False(t, ok)
	assert.False(t, legacy)
}

func TestVerify_LegacyPlaintext(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	ok, legacy := h.Verify("Passw0rd!", "Passw0rd!")
	assert.True(t, ok)
	assert.True(t, legacy)
}

func TestVerify_LegacyFixedSalt(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	stored := base64.StdEncoding.EncodeToString([]byte("virtuoso_secure_salt_password"))

	ok, legacy := h.Verify("password", stored)
	assert.True(t, ok)
	assert.True(t, legacy)
}

func TestVerify_NoMatch(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	ok, legacy := h.Verify("Passw0rd!", "something else entirely")
	assert.False(t, ok)
	assert.False(t, legacy)
}
