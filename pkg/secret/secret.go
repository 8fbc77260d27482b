package secret

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/hkdf"
)

// MinLength is the minimum accepted secret size in bytes. Shorter keys
// weaken the HMAC signatures derived from them.
const MinLength = 32

// saltInfo namespaces derived keys so a weblayer secret cannot collide with
// keys derived by other systems from the same root material.
const saltInfo = "weblayer-secret-v1"

// Secret is the process-wide cryptographic trust anchor. It is loaded once
// at startup, immutable afterwards, and redacted from all string and log
// output.
type Secret struct {
	raw []byte
}

// New validates and wraps raw key material.
func New(raw string) (Secret, error) {
	if raw == "" {
		return Secret{}, ErrNoSecret
	}
	if len(raw) < MinLength {
		return Secret{}, fmt.Errorf("%w: have %d bytes, need at least %d", ErrTooShort, len(raw), MinLength)
	}
	return Secret{raw: []byte(raw)}, nil
}

// Bytes returns the raw key material for use as a MAC key. The returned
// slice is a copy so callers cannot mutate the anchor.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out
}

// Derive produces a purpose-bound 32-byte subkey via HKDF-SHA256.
// Applications that sign several independent cookie namespaces can give
// each its own key without managing extra configuration.
func (s Secret) Derive(purpose string) ([]byte, error) {
	if len(s.raw) == 0 {
		return nil, ErrNoSecret
	}
	if purpose == "" {
		return nil, errors.New("secret: empty derivation purpose")
	}

	r := hkdf.New(sha256.New, s.raw, []byte(purpose), []byte(saltInfo))
	key := make([]byte, MinLength)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrDerivationFailed, err)
	}
	return key, nil
}

// String implements fmt.Stringer and never exposes key material.
func (s Secret) String() string {
	return "[REDACTED]"
}

// LogValue keeps the secret out of structured logs.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}
