package service

import (
	"log/slog"

	"github.com/google/uuid"

	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
	apperrors "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/errors"
)

// Cipher provides reversible authenticated encryption for credentials that
// must later be read back in plaintext (e.g., trading-platform account
// passwords). Credentials that only need comparison should go through a
// PasswordHasher instead.
//
// Encrypted values are serialized in the durable iv:tag:ciphertext hex-triplet
// wire format (see credentialDomain.EncryptedSecret). Encryption is
// non-deterministic: a fresh random IV is generated per call, so encrypting
// the same plaintext twice yields different strings that both decrypt to the
// same value.
//
// All failure detail is logged internally and collapsed into sentinel errors
// at the boundary: callers learn that an operation was not possible, never
// why. The instance is immutable after construction and safe for concurrent
// use.
type Cipher struct {
	aead   AEAD
	alg    credentialDomain.Algorithm
	logger *slog.Logger
}

// NewCipher creates a Cipher for the given 32-byte key and algorithm.
//
// The key is typically resolved through credentialDomain.ResolveKeyMaterial.
// The caller may zero the key after construction; the underlying cipher keeps
// its own expanded key schedule.
func NewCipher(
	key []byte,
	alg credentialDomain.Algorithm,
	logger *slog.Logger,
) (*Cipher, error) {
	aead, err := NewAEADManager().CreateCipher(key, alg)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead, alg: alg, logger: logger}, nil
}

// Algorithm returns the AEAD algorithm this cipher was constructed with.
func (c *Cipher) Algorithm() credentialDomain.Algorithm {
	return c.alg
}

// Encrypt encrypts a plaintext credential and returns the iv:tag:ciphertext
// wire form.
//
// Returns ErrEmptySecret for empty input: an empty credential is a caller
// error and encrypting it would produce an empty ciphertext segment, which
// the wire format forbids.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		c.logger.Warn("refusing to encrypt empty credential")
		return "", credentialDomain.ErrEmptySecret
	}

	sealed, nonce, err := c.aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt credential")
	}

	// Seal appends the authentication tag; the wire format carries it as a
	// separate segment.
	split := len(sealed) - credentialDomain.TagSize
	encrypted := credentialDomain.EncryptedSecret{
		IV:         nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}

	return encrypted.String(), nil
}

// Decrypt decrypts a value in the iv:tag:ciphertext wire form and returns the
// plaintext credential.
//
// Any failure (malformed format, wrong key, authentication-tag mismatch,
// corrupted ciphertext) returns ErrDecryptionFailed, never partial plaintext.
// The causes are deliberately indistinguishable to the caller; the specific
// reason is logged internally with a diagnostic event id.
func (c *Cipher) Decrypt(value string) (string, error) {
	encrypted, err := credentialDomain.ParseEncryptedSecret(value)
	if err != nil {
		c.logFailure("malformed ciphertext", err)
		return "", credentialDomain.ErrDecryptionFailed
	}

	// The AEAD panics on a wrong-size nonce, so validate before handing over.
	if len(encrypted.IV) != c.aead.NonceSize() {
		c.logFailure("unexpected iv length", credentialDomain.ErrMalformedCiphertext)
		return "", credentialDomain.ErrDecryptionFailed
	}

	// Reassemble ciphertext||tag so the AEAD verifies the tag before
	// producing any plaintext.
	sealed := make([]byte, 0, len(encrypted.Ciphertext)+len(encrypted.Tag))
	sealed = append(sealed, encrypted.Ciphertext...)
	sealed = append(sealed, encrypted.Tag...)

	plaintext, err := c.aead.Decrypt(sealed, encrypted.IV, nil)
	if err != nil {
		c.logFailure("authentication failed", err)
		return "", credentialDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// logFailure records the real cause of a decryption failure at debug level.
// The event id lets operators correlate a caller-reported failure with the
// diagnostic without exposing the cause to the caller.
func (c *Cipher) logFailure(reason string, err error) {
	c.logger.Debug(
		"credential decryption failed",
		slog.String("event_id", uuid.Must(uuid.NewV7()).String()),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
}
