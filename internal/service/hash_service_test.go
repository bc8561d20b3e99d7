package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastArgon2 keeps the credential tests quick.
var fastArgon2 = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	match, err := svc.Verify("1234", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = svc.Verify("4321", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashServiceWithParams(fastArgon2)

	hash1, err := svc.Hash("same-password")
	require.NoError(t, err)
	hash2, err := svc.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestArgon2HashService_VerifyAcrossParams(t *testing.T) {
	fast := NewArgon2HashServiceWithParams(fastArgon2)
	hash, err := fast.Hash("bankpass")
	require.NoError(t, err)

	match, err := NewArgon2HashService().Verify("bankpass", hash)
	require.NoError(t, err)
	assert.True(t, match, "parameters are read from the encoded hash")
}

func TestArgon2HashService_MalformedHash(t *testing.T) {
	svc := NewArgon2HashServiceWithParams(fastArgon2)

	tests := []struct {
		name string
		hash string
	}{
		{"wrong part count", "$argon2id$v=19$bad"},
		{"wrong algorithm", "$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$garbage$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA"},
		{"bad hash", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := svc.Verify("x", tt.hash)
			assert.Error(t, err)
			assert.False(t, match)
		})
	}
}
