// Package encryption seals small payloads into cookie-safe strings.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Sealer turns plaintext into an opaque string and back.
type Sealer interface {
	// Seal encodes plaintext into a cookie-safe string.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails on any token Seal did not produce.
	Open(token string) ([]byte, error)
}

// NewSealer returns an AES-256-GCM sealer when key is set, else a plain base64 sealer.
func NewSealer(key string) (Sealer, error) {
	if key == "" {
		return NewBase64Sealer(), nil
	}
	return NewAESSealer(key)
}

// AESSealer implements Sealer using AES-256-GCM.
type AESSealer struct {
	gcm cipher.AEAD
}

// NewAESSealer creates a new AES-256-GCM sealer.
// The key must be 32 bytes, given raw or base64-encoded. A key whose base64
// decoding is not 32 bytes long is taken as raw.
func NewAESSealer(key string) (*AESSealer, error) {
	keyBytes := []byte(key)
	if decoded, err := base64.StdEncoding.DecodeString(key); err == nil && len(decoded) == 32 {
		keyBytes = decoded
	}

	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(keyBytes))
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESSealer{gcm: gcm}, nil
}

// Seal encrypts plaintext and returns base64(nonce || ciphertext).
func (s *AESSealer) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := s.gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a token produced by Seal.
func (s *AESSealer) Open(token string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("token too short")
	}

	plaintext, err := s.gcm.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	return plaintext, nil
}

// Base64Sealer only base64-encodes. It offers no tamper protection.
type Base64Sealer struct{}

// NewBase64Sealer creates a new base64 sealer.
func NewBase64Sealer() *Base64Sealer {
	return &Base64Sealer{}
}

// Seal returns the plaintext as standard base64.
func (s *Base64Sealer) Seal(plaintext []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(plaintext), nil
}

// Open decodes standard base64.
func (s *Base64Sealer) Open(token string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(token)
}
