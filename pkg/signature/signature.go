package signature

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // legacy wire format requires SHA-1 digests
	"crypto/subtle"
	"encoding/hex"
)

// Sign computes a lowercase hex HMAC-SHA1 digest over the given parts,
// keyed by secret. Each part is written to the MAC in order via sequential
// updates with no separator bytes, so the digest covers exactly the
// concatenation of the parts' UTF-8 bytes. The same secret, parts and order
// always produce the same digest.
func Sign(secret []byte, parts ...string) string {
	mac := hmac.New(sha1.New, secret)
	for _, part := range parts {
		mac.Write([]byte(part))
	}
	return hex.EncodeToString(mac.Sum(nil))
}

// Equal reports whether a and b are equal in time independent of where the
// first mismatch occurs. Equal-length inputs are compared over their full
// length with no early exit; a length mismatch returns false immediately,
// which leaks the length but never a mismatch position.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
