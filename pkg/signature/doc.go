// Package signature implements the keyed-hash primitive behind signed
// cookies: deterministic HMAC-SHA1 digests over an ordered sequence of
// string parts, plus a timing-independent equality check for verifying
// them.
//
// The digest covers the raw concatenation of the parts with no separator
// bytes, so signing and verification must agree on both the parts and
// their order.
//
//	sig := signature.Sign(secret, name, payload, timestamp)
//	ok := signature.Equal(sig, presented)
package signature
