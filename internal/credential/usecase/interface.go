// Package usecase exposes the credential-protection operation surface used by
// the CRM's registration, login, password-reset, and admin credential-view
// flows. It orchestrates the validation, hashing, encryption, and token
// generation services.
package usecase

import (
	"context"
)

// CredentialUseCase defines the credential-protection operations.
//
// All operations are synchronous and safe for concurrent use. Callers are
// responsible for persisting returned hash/ciphertext strings verbatim as
// opaque text and for supplying back the exact stored string to
// ComparePassword/DecryptPassword.
type CredentialUseCase interface {
	// HashPassword produces a one-way adaptive hash for login credentials.
	// Use this for secrets that only ever need comparison, never readback.
	HashPassword(ctx context.Context, password string) (string, error)

	// ComparePassword verifies a plain password against a stored hash using
	// the hash's own constant-time comparison. The hashing algorithm is
	// detected from the stored hash encoding, so stores may hold a mix of
	// bcrypt and Argon2id hashes.
	ComparePassword(ctx context.Context, password, hashed string) bool

	// EncryptPassword reversibly encrypts a credential that must later be
	// read back in plaintext (e.g., a trading-platform account password).
	// Returns the durable iv:tag:ciphertext wire form.
	EncryptPassword(ctx context.Context, password string) (string, error)

	// DecryptPassword decrypts a value produced by EncryptPassword. Any
	// failure returns an error carrying no information about the cause.
	DecryptPassword(ctx context.Context, encrypted string) (string, error)

	// GenerateResetToken returns a 64-character hex token for password-reset
	// links. Expiry and single-use tracking are the caller's responsibility.
	GenerateResetToken(ctx context.Context) (string, error)

	// GenerateRandomPassword returns a temporary password of the given
	// length, meant to be changed by the user immediately.
	GenerateRandomPassword(ctx context.Context, length int) string

	// GenerateOTP returns a 6-digit numeric one-time code.
	GenerateOTP(ctx context.Context) (string, error)
}
