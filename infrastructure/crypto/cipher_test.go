package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCipher_RoundTrip(t *testing.T) {
	cipher, err := NewTokenCipher("application-secret")
	require.NoError(t, err)

	plaintext := `{"apiKey":"key-abc","apiSecret":"secret-xyz","customerId":"cust-777"}`

	ciphertext, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := cipher.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestTokenCipher_EncryptIsNonDeterministic(t *testing.T) {
	cipher, err := NewTokenCipher("application-secret")
	require.NoError(t, err)

	first, err := cipher.Encrypt("token")
	require.NoError(t, err)
	second, err := cipher.Encrypt("token")
	require.NoError(t, err)

	// A fresh nonce per call means identical plaintexts never collide.
	assert.NotEqual(t, first, second)
}

func TestTokenCipher_WrongKeyFailsToDecrypt(t *testing.T) {
	cipher, err := NewTokenCipher("application-secret")
	require.NoError(t, err)

	ciphertext, err := cipher.Encrypt("token")
	require.NoError(t, err)

	rotated, err := NewTokenCipher("rotated-secret")
	require.NoError(t, err)

	_, err = rotated.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestTokenCipher_RejectsGarbage(t *testing.T) {
	cipher, err := NewTokenCipher("application-secret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "not base64", ciphertext: "not base64!!!"},
		{name: "too short", ciphertext: "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.Decrypt(tt.ciphertext)
			assert.Error(t, err)
		})
	}
}

func TestNewTokenCipher_RequiresSecret(t *testing.T) {
	_, err := NewTokenCipher("")
	assert.Error(t, err)
}
