package huffpack

import (
	"crypto/sha256"
	"crypto/subtle"
)

// digestText computes the 32-byte content digest over the plaintext's UTF-8
// bytes. The same function runs at compress time (digest stored in the
// container) and at decompress time (digest recomputed from decoded text).
func digestText(text string) [digestSize]byte {
	return sha256.Sum256([]byte(text))
}

// digestsEqual compares two content digests in constant time.
func digestsEqual(a, b [digestSize]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
