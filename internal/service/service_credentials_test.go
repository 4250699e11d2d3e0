package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScryptN = 16

func TestCredentialStore_HashAndVerify(t *testing.T) {
	c := NewCredentialStore(testScryptN)

	h1, err := c.Hash("pw1")
	require.NoError(t, err)
	h2, err := c.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", h1)
	assert.NotContains(t, h1, "pw1")
	assert.NotEqual(t, h1, h2, "per-call salt must differ")
	assert.True(t, strings.HasPrefix(h1, "scrypt:16:8:1$"))

	assert.True(t, c.Verify("pw1", h1))
	assert.True(t, c.Verify("pw1", h2))
	assert.False(t, c.Verify("pw2", h1))
	assert.False(t, c.Verify("", h1))
}

func TestCredentialStore_VerifyUsesStoredParameters(t *testing.T) {
	old := NewCredentialStore(testScryptN)
	h, err := old.Hash("secret")
	require.NoError(t, err)

	// a store configured with a higher cost still verifies older hashes
	assert.True(t, NewCredentialStore(1024).Verify("secret", h))
}

func TestCredentialStore_VerifyMalformed(t *testing.T) {
	c := NewCredentialStore(testScryptN)
	valid, err := c.Hash("pw")
	require.NoError(t, err)
	digest := valid[strings.LastIndex(valid, "$")+1:]

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "pw"},
		{"unknown algorithm", "pbkdf2:sha256:1000$salt$" + digest},
		{"missing parts", "scrypt:16:8:1$salt"},
		{"empty salt", "scrypt:16:8:1$$" + digest},
		{"non power of two", "scrypt:15:8:1$salt$" + digest},
		{"huge cost", "scrypt:1073741824:8:1$salt$" + digest},
		{"bad r", "scrypt:16:x:1$salt$" + digest},
		{"bad p", "scrypt:16:8:0$salt$" + digest},
		{"non hex digest", "scrypt:16:8:1$salt$zz"},
		{"empty digest", "scrypt:16:8:1$salt$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, c.Verify("pw", tt.encoded))
			})
		})
	}
}
