// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UniqueIDLength is the length of the member token assigned when an
// account completes onboarding.
const UniqueIDLength = 7

// GenerateUniqueID returns an uppercase alphanumeric token of
// [UniqueIDLength] characters, drawn from the OS CSPRNG. The token is not
// checked for collisions across accounts; with a 36-character alphabet the
// collision space (36^7) makes that acceptable for this application.
func GenerateUniqueID() string {
	return GenerateToken(UniqueIDLength)
}

// GenerateToken returns an uppercase alphanumeric token of n characters.
func GenerateToken(n int) string {
	max := big.NewInt(int64(len(tokenAlphabet)))

	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms; if it does,
			// there is nothing sensible to fall back to.
			panic(err)
		}
		buf[i] = tokenAlphabet[idx.Int64()]
	}

	return string(buf)
}
