// Package cookie implements tamper-evident, expiring HTTP cookies signed
// with HMAC-SHA1.
//
// # Overview
//
// The Codec type is the entry point. It is initialised with a secret key
// and a set of default cookie Options, and is safe for concurrent use: the
// secret is read-only after construction and the request/response pair is
// passed per call.
//
// The wire format is three pipe-delimited fields:
//
//	base64(payload) + "|" + unix-seconds + "|" + hex-hmac-digest
//
// The signature covers the cookie name, the base64 payload and the
// timestamp, in that order. Covering the name prevents a value signed for
// one cookie being replayed under another; signing the timestamp prevents
// an attacker extending a token's life.
//
// # Expiry
//
// Max-Age is a hint to the client; the codec does not trust it. Every read
// independently rejects values whose embedded timestamp is older than 31
// days, even for cookies set with session scope and no Max-Age at all.
//
// # Error Handling
//
// Get and Verify return nil for every rejection - absent, malformed,
// stale, bad signature or undecodable payload. Callers never learn the
// sub-reason; a warning with the raw rejected value goes to the
// configured slog.Logger for audit.
//
// # Usage
//
//	codec, err := cookie.New(secretKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    _ = codec.Set(w, "session", []byte("user-42"))
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    payload := codec.Get(r, "session") // nil when not valid
//	    _ = payload
//	})
package cookie
