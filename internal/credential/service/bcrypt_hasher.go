package service

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/errors"
)

// DefaultBcryptCost is the bcrypt work factor used for new hashes.
// All hashes stored by earlier releases of the CRM were produced at this cost.
const DefaultBcryptCost = 10

// BcryptHasher implements PasswordHasher using bcrypt.
//
// bcrypt is an adaptive one-way hash: the work factor and a random per-hash
// salt are encoded inline in the produced string, so hashing the same
// password twice yields different strings that both verify. Stored hashes are
// compared, never decoded.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given work factor.
// Out-of-range costs fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt hash of the password.
//
// Empty passwords are a caller error and must be rejected by validation
// before reaching this point; this method does not special-case them.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// Verify performs bcrypt's constant-time comparison between the password and
// the stored hash. Returns false for mismatches and malformed hashes alike.
func (h *BcryptHasher) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
