package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// TokenEncryptor is the contract the credential lifecycle consumes. Inputs
// and outputs are opaque strings; callers never inspect ciphertext.
type TokenEncryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenCipher encrypts platform credentials with XChaCha20-Poly1305. The key
// is derived from the configured application secret, so rotating the secret
// invalidates every stored token and forces reconnection.
type TokenCipher struct {
	key [32]byte
}

func NewTokenCipher(secret string) (*TokenCipher, error) {
	if secret == "" {
		return nil, errors.New("encryption secret is required")
	}

	return &TokenCipher{key: sha256.Sum256([]byte(secret))}, nil
}

func (c *TokenCipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key[:])
	if err != nil {
		return "", errors.Wrap(err, "creating cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Wrap(err, "generating nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *TokenCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "decoding ciphertext")
	}

	aead, err := chacha20poly1305.NewX(c.key[:])
	if err != nil {
		return "", errors.Wrap(err, "creating cipher")
	}

	if len(raw) < aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.Wrap(err, "opening ciphertext")
	}

	return string(plaintext), nil
}
