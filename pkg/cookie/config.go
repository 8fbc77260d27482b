package cookie

import "net/http"

// Config holds cookie attribute configuration, typically populated from
// environment variables. The signing secret is supplied separately by the
// caller so it can be validated and redacted centrally.
type Config struct {
	Path        string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string        `env:"COOKIE_DOMAIN" envDefault:""`
	ExpiresDays int           `env:"COOKIE_EXPIRES_DAYS" envDefault:"30"`
	Secure      bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly    bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite    http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns the default cookie configuration.
func DefaultConfig() Config {
	return Config{
		Path:        "/",
		ExpiresDays: DefaultExpiresDays,
		HttpOnly:    true,
		SameSite:    http.SameSiteLaxMode,
	}
}

// NewFromConfig creates a Codec keyed by secretKey with defaults taken
// from cfg. Additional options override the config values.
func NewFromConfig(secretKey []byte, cfg Config, opts ...Option) (*Codec, error) {
	configOpts := make([]Option, 0, 6+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts, WithExpiresDays(cfg.ExpiresDays))
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(secretKey, configOpts...)
}
