package weblayer

import (
	"github.com/dmitrymomot/weblayer/pkg/cookie"
)

// Config is the application-level configuration surface, read from the
// environment and validated eagerly by New - a missing or short secret
// fails at startup, not on the first request.
type Config struct {
	// SecretKey signs every cookie. Required; minimum 32 bytes.
	SecretKey string `env:"WEBLAYER_SECRET_KEY,required"`

	// CheckXSRF toggles XSRF validation on browser form POSTs.
	CheckXSRF bool `env:"WEBLAYER_CHECK_XSRF" envDefault:"true"`

	// DebugErrors passes unexpected handler errors through to the caller
	// instead of converting them to 500 responses. Development only.
	DebugErrors bool `env:"WEBLAYER_DEBUG_ERRORS" envDefault:"false"`

	// Cookie carries the default cookie attributes.
	Cookie cookie.Config `envPrefix:"WEBLAYER_"`
}

// DefaultConfig returns a Config with production defaults and no secret.
func DefaultConfig() Config {
	return Config{
		CheckXSRF: true,
		Cookie:    cookie.DefaultConfig(),
	}
}
