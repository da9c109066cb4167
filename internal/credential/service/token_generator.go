package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"strconv"

	apperrors "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/errors"
)

const (
	// resetTokenBytes is the entropy of a reset token (64 hex characters).
	resetTokenBytes = 32

	// DefaultTempPasswordLength is the length of generated temporary passwords.
	DefaultTempPasswordLength = 12

	// tempPasswordAlphabet is the fixed 72-character alphabet for temporary
	// passwords: lowercase, uppercase, digits, and a small punctuation set.
	tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%^&*()"
)

// tokenGenerator implements TokenGenerator. It is stateless and safe for
// concurrent use.
type tokenGenerator struct{}

// NewTokenGenerator creates a new TokenGenerator.
func NewTokenGenerator() TokenGenerator {
	return &tokenGenerator{}
}

// ResetToken creates a cryptographically secure 32-byte random token,
// hex-encoded to 64 characters, intended for password-reset links. Expiry and
// single-use tracking are the caller's responsibility.
func (g *tokenGenerator) ResetToken() (string, error) {
	randomBytes := make([]byte, resetTokenBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate random token")
	}

	return hex.EncodeToString(randomBytes), nil
}

// TempPassword builds a temporary password by uniformly sampling length
// characters from the fixed 72-character alphabet. Non-positive lengths fall
// back to DefaultTempPasswordLength.
//
// The sampling uses a non-cryptographic random source: generated passwords
// are meant to be changed by the user immediately after first login. Anything
// whose unpredictability must hold over time (bootstrap credentials, API
// secrets) should use ResetToken instead.
func (g *tokenGenerator) TempPassword(length int) string {
	if length < 1 {
		length = DefaultTempPasswordLength
	}

	password := make([]byte, length)
	for i := range password {
		password[i] = tempPasswordAlphabet[mathrand.IntN(len(tempPasswordAlphabet))]
	}

	return string(password)
}

// OTP creates a 6-digit numeric one-time code sampled uniformly from
// [100000, 999999].
func (g *tokenGenerator) OTP() (string, error) {
	// 900000 possible codes starting at 100000
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return strconv.FormatInt(100000+n.Int64(), 10), nil
}
