package cookie

import (
	"log/slog"
	"net/http"
)

// Options carries cookie attributes plus codec-level settings. Zero
// ExpiresDays means a session cookie with no Max-Age; note that signed
// values remain subject to the absolute staleness window regardless.
type Options struct {
	Path        string
	Domain      string
	ExpiresDays int
	Secure      bool
	HttpOnly    bool
	SameSite    http.SameSite
	Logger      *slog.Logger
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithExpiresDays sets the cookie Max-Age in days.
func WithExpiresDays(days int) Option {
	return func(o *Options) {
		o.ExpiresDays = days
	}
}

// WithSessionScope drops the Max-Age attribute so the cookie lives only
// for the browser session.
func WithSessionScope() Option {
	return func(o *Options) {
		o.ExpiresDays = 0
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithLogger sets the logger used for rejected-cookie diagnostics.
// Meaningful at construction time only.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// applyOptions copies base and applies the option functions to the copy,
// leaving the codec defaults untouched.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
