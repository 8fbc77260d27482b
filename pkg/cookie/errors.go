package cookie

import "errors"

var (
	ErrNoSecret       = errors.New("cookie: secret required")
	ErrSecretTooShort = errors.New("cookie: secret must be 32+ bytes")
	ErrNegativeExpiry = errors.New("cookie: expires days must not be negative")
)
