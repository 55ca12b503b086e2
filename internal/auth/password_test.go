package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"short password", "pw123456"},
		{"exactly at the 72-byte boundary", strings.Repeat("a", 72)},
		{"beyond the 72-byte boundary", strings.Repeat("a", 100)},
		{"multibyte input", strings.Repeat("é", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.True(t, CheckPassword(tt.password, hash))
			if len(tt.password) < 72 {
				assert.False(t, CheckPassword(tt.password+"x", hash))
			} else {
				// Bytes past the boundary never participate in the hash.
				assert.True(t, CheckPassword(tt.password+"x", hash))
			}
		})
	}
}

func TestHashPasswordFreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordTruncationParity(t *testing.T) {
	// Two secrets sharing the first 72 bytes are indistinguishable; this is
	// the documented truncation behavior, kept for hash compatibility.
	base := strings.Repeat("x", 72)
	hash, err := HashPassword(base+"tail-one", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(base+"tail-one", hash))
	assert.True(t, CheckPassword(base+"completely-different-tail", hash))
	assert.True(t, CheckPassword(base, hash))
	assert.False(t, CheckPassword(base[:71], hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("pw123456", ""))
	assert.False(t, CheckPassword("pw123456", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("pw123456", "$2a$garbage"))
}

func TestCheckPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, CheckPassword("battery-staple", hash))
}
