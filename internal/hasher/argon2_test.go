package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2id_HashAndVerify(t *testing.T) {
	h := NewArgon2id()

	hash, err := h.Hash("pw123456")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := h.Verify("pw123456", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrongsecret", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2id_Hash_EmptySecret(t *testing.T) {
	h := NewArgon2id()

	_, err := h.Hash("")
	require.Error(t, err)
}

func TestArgon2id_Hash_UniqueSalt(t *testing.T) {
	h := NewArgon2id()

	first, err := h.Hash("pw123456")
	require.NoError(t, err)
	second, err := h.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2id_Verify_MalformedHash(t *testing.T) {
	h := NewArgon2id()

	tests := []struct {
		name string
		hash string
	}{
		{name: "not a phc string", hash: "plainhash"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{name: "bad params", hash: "$argon2id$v=19$m=abc$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify("pw123456", tt.hash)
			assert.Error(t, err)
		})
	}
}

func TestArgon2id_Verify_TamperedHash(t *testing.T) {
	h := NewArgon2id()

	hash, err := h.Hash("pw123456")
	require.NoError(t, err)

	// Flip the last character of the encoded key material.
	tampered := hash[:len(hash)-1]
	if strings.HasSuffix(hash, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	ok, err := h.Verify("pw123456", tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}
