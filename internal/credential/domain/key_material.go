package domain

import (
	"encoding/hex"
	"strings"
)

// KeyMaterialSize is the AES-256/ChaCha20 key length in bytes.
const KeyMaterialSize = 32

// fallbackSeed is the built-in development key seed. It is public knowledge
// and therefore unsafe for production; FallbackKeyMaterial is only reachable
// behind the explicit DEV_MODE flag.
const fallbackSeed = "solitaire-markets-dev-encryption-key"

// DeriveKeyMaterial derives the 32-byte symmetric key from an operator-supplied
// seed string.
//
// The derivation is a deterministic hex-normalization, not a KDF:
//   - a seed that is already exactly 64 hex characters decodes directly
//   - any other seed is hex-encoded from its UTF-8 bytes, right-padded with
//     '0' to 64 characters, and truncated to exactly 64 before decoding
//
// Credentials already stored by earlier releases were encrypted under keys
// produced by exactly this procedure, so it must be reproduced bit-for-bit.
// Replacing it with a real KDF would make every stored value undecryptable.
// The function is total: every seed yields 32 bytes.
func DeriveKeyMaterial(seed string) []byte {
	if key, ok := decodeHexKey(seed); ok {
		return key
	}

	encoded := hex.EncodeToString([]byte(seed))
	if len(encoded) < hex.EncodedLen(KeyMaterialSize) {
		encoded += strings.Repeat("0", hex.EncodedLen(KeyMaterialSize)-len(encoded))
	}
	encoded = encoded[:hex.EncodedLen(KeyMaterialSize)]

	// encoded is valid even-length hex by construction
	key, _ := hex.DecodeString(encoded)
	return key
}

// ResolveKeyMaterial resolves the encryption key from the configured seed.
//
// An empty seed degrades to the built-in fallback key only when devMode is
// enabled; outside development mode a missing seed is a configuration error,
// so production deployments cannot silently encrypt under the public fallback
// key. A non-empty seed always resolves deterministically via
// DeriveKeyMaterial.
func ResolveKeyMaterial(seed string, devMode bool) ([]byte, error) {
	if seed != "" {
		return DeriveKeyMaterial(seed), nil
	}
	if devMode {
		return FallbackKeyMaterial(), nil
	}
	return nil, ErrEncryptionKeyRequired
}

// FallbackKeyMaterial derives the insecure built-in development key through
// the same normalization path as operator-supplied seeds, preserving read
// compatibility with any data already encrypted under it.
func FallbackKeyMaterial() []byte {
	return DeriveKeyMaterial(fallbackSeed)
}

// decodeHexKey decodes seed as a raw 64-character hex key.
func decodeHexKey(seed string) ([]byte, bool) {
	if len(seed) != hex.EncodedLen(KeyMaterialSize) {
		return nil, false
	}
	key, err := hex.DecodeString(seed)
	if err != nil {
		return nil, false
	}
	return key, true
}
