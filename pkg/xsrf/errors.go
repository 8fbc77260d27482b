package xsrf

import "errors"

var (
	ErrTokenMissing  = errors.New("xsrf: _xsrf field missing from POST")
	ErrTokenMismatch = errors.New("xsrf: token does not match POST field")
)
