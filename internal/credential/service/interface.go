// Package service provides cryptographic services for credential protection.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), adaptive password
// hashing, and token generation.
package service

import (
	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext
	// (with the authentication tag appended) and the nonce used.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD, verifying
	// the authentication tag before returning any plaintext.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes expected by this cipher.
	NonceSize() int
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg credentialDomain.Algorithm) (AEAD, error)
}

// PasswordHasher defines the interface for one-way password hashing.
type PasswordHasher interface {
	// Hash produces a salted, self-describing hash of the password.
	Hash(password string) (string, error)

	// Verify performs a constant-time comparison between a plain password and
	// its stored hash. Returns false for any malformed hash.
	Verify(password, hashed string) bool
}

// TokenGenerator defines the interface for reset tokens, temporary passwords,
// and one-time codes.
type TokenGenerator interface {
	// ResetToken returns a 64-character hex token from a cryptographically
	// secure random source, intended for password-reset links.
	ResetToken() (string, error)

	// TempPassword returns a generated temporary password of the given length.
	TempPassword(length int) string

	// OTP returns a 6-digit numeric one-time code.
	OTP() (string, error)
}
