package domain

// Algorithm represents the AEAD algorithm used for credential encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data
// (AEAD), ensuring both confidentiality and authenticity of encrypted credentials.
//
// Algorithm selection guidelines:
//   - AESGCM is the compatibility default and the only algorithm able to read
//     credentials encrypted by earlier releases
//   - ChaCha20 may be selected for fresh deployments on platforms without AES-NI
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// This implementation uses a 16-byte IV to remain wire-compatible with
	// credentials already stored in the iv:tag:ciphertext format, and a
	// 16-byte authentication tag.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// ChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305
	// MAC. It uses a 12-byte nonce and a 16-byte authentication tag, and is
	// constant-time on platforms without AES hardware acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm converts a configuration string into an Algorithm.
// Returns ErrUnsupportedAlgorithm for unknown values.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch Algorithm(value) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
