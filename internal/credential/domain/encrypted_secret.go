// Package domain defines the core credential-protection entities and types.
package domain

import (
	"encoding/hex"
	"strings"
)

// TagSize is the authentication tag length in bytes for all supported AEADs.
const TagSize = 16

// EncryptedSecret is the parsed form of the durable iv:tag:ciphertext wire
// format used to persist reversible credentials.
//
// The serialized form is three colon-separated lowercase hex segments:
//
//	hex(iv) : hex(authTag) : hex(ciphertext)
//
// Segment count, byte lengths (16-byte tag, algorithm-dependent IV), and hex
// encoding are a hard compatibility contract with values already stored by
// earlier releases, not an implementation detail. The authentication tag is
// kept as a separate segment so it can be handed to the AEAD for verification
// before any plaintext is produced.
type EncryptedSecret struct {
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// ParseEncryptedSecret parses the iv:tag:ciphertext wire format.
//
// Returns ErrMalformedCiphertext unless splitting on ":" yields exactly three
// non-empty segments, every segment is valid hex, and the tag decodes to
// exactly 16 bytes. IV length is validated later by the cipher, since it
// depends on the algorithm in use.
func ParseEncryptedSecret(value string) (EncryptedSecret, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return EncryptedSecret{}, ErrMalformedCiphertext
	}

	for _, part := range parts {
		if part == "" {
			return EncryptedSecret{}, ErrMalformedCiphertext
		}
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return EncryptedSecret{}, ErrMalformedCiphertext
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return EncryptedSecret{}, ErrMalformedCiphertext
	}
	if len(tag) != TagSize {
		return EncryptedSecret{}, ErrMalformedCiphertext
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return EncryptedSecret{}, ErrMalformedCiphertext
	}

	return EncryptedSecret{IV: iv, Tag: tag, Ciphertext: ciphertext}, nil
}

// String serializes the secret back into the iv:tag:ciphertext wire format.
func (e EncryptedSecret) String() string {
	return hex.EncodeToString(e.IV) + ":" + hex.EncodeToString(e.Tag) + ":" + hex.EncodeToString(e.Ciphertext)
}
