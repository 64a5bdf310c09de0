package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUniqueID_Length(t *testing.T) {
	id := GenerateUniqueID()
	assert.Len(t, id, UniqueIDLength)
}

func TestGenerateUniqueID_Alphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		id := GenerateUniqueID()
		for _, r := range id {
			inUpper := r >= 'A' && r <= 'Z'
			inDigit := r >= '0' && r <= '9'
			assert.True(t, inUpper || inDigit, "unexpected character %q in token %q", r, id)
		}
	}
}

func TestGenerateToken_CustomLength(t *testing.T) {
	assert.Len(t, GenerateToken(16), 16)
	assert.Empty(t, GenerateToken(0))
}

func TestGenerateUniqueID_NotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[GenerateUniqueID()] = true
	}
	// 20 draws from a 36^7 space must not all collide
	assert.Greater(t, len(seen), 1)
}
