package domain

import (
	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/errors"
)

// Credential operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors to
// provide context for credential-protection failures.
var (
	// ErrEmptySecret indicates an attempt to encrypt or hash an empty value.
	//
	// Empty credentials are always a caller error: registration and
	// password-reset flows must validate input before invoking this module.
	ErrEmptySecret = errors.Wrap(errors.ErrInvalidInput, "secret must not be empty")

	// ErrMalformedCiphertext indicates an encrypted value that does not match
	// the iv:tag:ciphertext hex-triplet wire format.
	//
	// This error never crosses the cipher boundary: Decrypt converts it to
	// ErrDecryptionFailed so callers cannot distinguish a malformed value from
	// a tampered one.
	ErrMalformedCiphertext = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Malformed or corrupted encrypted data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrEncryptionKeyRequired indicates no encryption key is configured and
	// development mode is disabled. The insecure built-in fallback key is only
	// available behind the explicit DEV_MODE flag.
	ErrEncryptionKeyRequired = errors.Wrap(errors.ErrInvalidInput, "encryption key required")

	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is
	// not supported. Supported algorithms: AESGCM (AES-256-GCM), ChaCha20
	// (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")
)
