package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// AES-GCM provides authenticated encryption with associated data (AEAD),
// combining the confidentiality of AES encryption with the authenticity of
// GMAC. This implementation uses AES-256 with a 256-bit key.
//
// Unlike the conventional 12-byte GCM nonce, this cipher uses a 16-byte IV.
// Credentials stored by earlier releases of the CRM were encrypted with
// 16-byte IVs, and the iv:tag:ciphertext wire format records the IV verbatim,
// so the IV length is part of the compatibility contract.
//
// Security properties:
//   - 256-bit key size
//   - 16-byte IV, randomly generated per encryption
//   - 16-byte authentication tag (appended to ciphertext)
//   - Authenticated encryption prevents tampering and forgery
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines. Each encryption operation generates a unique IV independently.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// aesGCMNonceSize is the IV length in bytes required for compatibility with
// stored credentials.
const aesGCMNonceSize = 16

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits) for AES-256. Keys should be
// derived through credentialDomain.DeriveKeyMaterial or generated with
// crypto/rand.
//
// Returns an error if the key size is invalid or cipher initialization fails.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != credentialDomain.KeyMaterialSize {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, aesGCMNonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with optional additional
// authenticated data.
//
// A unique 16-byte IV is randomly generated for each encryption operation
// using crypto/rand, so encrypting the same plaintext twice yields different
// ciphertexts. The IV must be stored alongside the ciphertext for later
// decryption; with GCM it is critical that IVs are never reused with the
// same key.
//
// The returned ciphertext includes the 16-byte authentication tag appended to
// the end.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using AES-256-GCM with the provided nonce and AAD.
//
// This method verifies the authentication tag before returning plaintext. If
// verification fails (wrong key, tampered ciphertext, or mismatched AAD), no
// plaintext is returned.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// NonceSize returns the IV length in bytes (16).
func (a *AESGCMCipher) NonceSize() int {
	return a.aead.NonceSize()
}
