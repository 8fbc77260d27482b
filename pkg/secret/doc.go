// Package secret wraps the application's cookie-signing key: validated once
// at startup, immutable afterwards, and redacted from fmt and slog output so
// it can never land in logs by accident.
//
// Derive produces purpose-bound subkeys via HKDF-SHA256 for applications
// that want distinct signing keys per cookie namespace while configuring a
// single root secret.
//
//	sec, err := secret.New(os.Getenv("WEBLAYER_SECRET_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	flashKey, _ := sec.Derive("flash-cookies")
package secret
