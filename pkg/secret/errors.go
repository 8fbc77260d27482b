package secret

import "errors"

var (
	ErrNoSecret         = errors.New("secret: required but not set")
	ErrTooShort         = errors.New("secret: too short")
	ErrDerivationFailed = errors.New("secret: key derivation failed")
)
