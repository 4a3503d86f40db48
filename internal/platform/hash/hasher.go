// Package hash derives the password digests stored for users.
package hash

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// iterations is the PBKDF2 work factor. Raising it changes every digest,
	// so it is fixed for the lifetime of a deployment's data.
	iterations = 100_000

	// digestLen is the derived key length in bytes; hex-encoded output is
	// twice this long.
	digestLen = 32
)

// Hasher derives deterministic, fixed-length hex digests from plaintext
// passwords using PBKDF2-SHA256 with a deployment-wide pepper.
//
// The same plaintext always yields the same digest, which keeps the
// email+digest lookup used at login working. Changing the pepper invalidates
// every stored digest.
type Hasher struct {
	pepper []byte
}

// New creates a Hasher with the given pepper.
func New(pepper string) *Hasher {
	return &Hasher{pepper: []byte(pepper)}
}

// Hash derives the 64-character lowercase hex digest for plaintext.
func (h *Hasher) Hash(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), h.pepper, iterations, digestLen, sha256.New)
	return hex.EncodeToString(key)
}
