// Package crypto seals sensitive client fields at rest.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"strings"

	"clientverse/config"
	"clientverse/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealedPrefix marks values produced by Seal so legacy plain text can still be read.
const sealedPrefix = "enc:v1:"

// ErrMalformedCiphertext is returned when a sealed value cannot be decoded or authenticated.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

type aeadCipher struct {
	key []byte
}

// NewFieldCipher creates an XChaCha20-Poly1305 cipher from a 32-byte key.
func NewFieldCipher(key []byte) (service.FieldCipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("field cipher key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	// Validate the key once so Seal/Open never fail on construction.
	if _, err := chacha20poly1305.NewX(key); err != nil {
		return nil, errors.WithStack(err)
	}

	return &aeadCipher{key: append([]byte(nil), key...)}, nil
}

// Seal encrypts plaintext with a random nonce. Empty input stays empty.
func (c *aeadCipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "read nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return sealedPrefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Values without the sealed prefix are returned unchanged.
func (c *aeadCipher) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return sealed, nil
	}

	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(ErrMalformedCiphertext, err.Error())
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if len(raw) < aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(ErrMalformedCiphertext, err.Error())
	}

	return string(plaintext), nil
}

// noopCipher stores values as given when no key is configured
type noopCipher struct{}

func (noopCipher) Seal(plaintext string) (string, error) {
	return plaintext, nil
}

func (noopCipher) Open(sealed string) (string, error) {
	if strings.HasPrefix(sealed, sealedPrefix) {
		return "", errors.Wrap(ErrMalformedCiphertext, "no key configured")
	}

	return sealed, nil
}

// NewNoopCipher returns a cipher that leaves values untouched
func NewNoopCipher() service.FieldCipher {
	return noopCipher{}
}

// NewFieldCipherFromConfig creates the field cipher described by cfg.Encryption
func NewFieldCipherFromConfig(cfg *config.Config, logger *slog.Logger) (service.FieldCipher, error) {
	if cfg.Encryption == nil || cfg.Encryption.Key == "" {
		logger.Warn("Encryption key not configured, sensitive fields are stored as plain text")

		return NewNoopCipher(), nil
	}

	key, err := base64.StdEncoding.DecodeString(cfg.Encryption.Key)
	if err != nil {
		return nil, errors.Wrap(err, "decode encryption key")
	}

	return NewFieldCipher(key)
}
