package cookie

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/weblayer/pkg/signature"
)

const (
	minSecretLength = 32

	// DefaultExpiresDays is the Max-Age applied to signed cookies unless
	// overridden with WithExpiresDays or WithSessionScope.
	DefaultExpiresDays = 30

	// stalenessWindow is the absolute token lifetime enforced at read
	// time, independent of any Max-Age the cookie was set with. Clients
	// are not trusted to discard expired cookies.
	stalenessWindow = 31 * 24 * time.Hour
)

// Codec signs, verifies and expires cookie values using a single secret.
// The secret is read-only after construction, so one Codec serves any
// number of concurrent requests.
type Codec struct {
	secret   []byte
	defaults Options
	log      *slog.Logger
}

// New creates a Codec keyed by secretKey. Options become the defaults for
// every Set and Delete call and can be overridden per call.
func New(secretKey []byte, opts ...Option) (*Codec, error) {
	if len(secretKey) == 0 {
		return nil, ErrNoSecret
	}
	if len(secretKey) < minSecretLength {
		return nil, ErrSecretTooShort
	}

	defaults := Options{
		Path:        "/",
		HttpOnly:    true,
		SameSite:    http.SameSiteLaxMode,
		ExpiresDays: DefaultExpiresDays,
	}
	defaults = applyOptions(defaults, opts)

	if defaults.ExpiresDays < 0 {
		return nil, ErrNegativeExpiry
	}

	log := defaults.Logger
	if log == nil {
		log = slog.Default()
	}

	key := make([]byte, len(secretKey))
	copy(key, secretKey)

	return &Codec{
		secret:   key,
		defaults: defaults,
		log:      log,
	}, nil
}

// Set signs and timestamps value and writes it as a cookie on w. The wire
// form is base64(value) + "|" + unix-seconds + "|" + hex HMAC digest, with
// the signature covering the cookie name so a value signed for one name
// cannot be replayed under another.
func (c *Codec) Set(w http.ResponseWriter, name string, value []byte, opts ...Option) error {
	options := applyOptions(c.defaults, opts)
	if options.ExpiresDays < 0 {
		return ErrNegativeExpiry
	}

	payload := base64.StdEncoding.EncodeToString(value)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	sig := signature.Sign(c.secret, name, payload, timestamp)

	maxAge := 0
	if options.ExpiresDays > 0 {
		maxAge = options.ExpiresDays * 24 * 60 * 60
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    payload + "|" + timestamp + "|" + sig,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   maxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

// Get reads the named cookie from r and returns its decoded payload, or
// nil when the cookie is absent, malformed, stale or carries an invalid
// signature. Callers must treat nil as "no valid cookie"; the rejection
// reason is only logged.
func (c *Codec) Get(r *http.Request, name string) []byte {
	ck, err := r.Cookie(name)
	if err != nil {
		return nil
	}
	return c.Verify(name, ck.Value)
}

// Verify validates a signed value obtained out of band, as if it had been
// presented as a cookie called name. Returns the decoded payload or nil.
func (c *Codec) Verify(name, value string) []byte {
	parts := strings.Split(value, "|")
	if len(parts) != 3 {
		return nil
	}

	timestamp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil
	}
	if time.Unix(timestamp, 0).Before(time.Now().Add(-stalenessWindow)) {
		c.log.Warn("expired cookie", slog.String("cookie", name), slog.String("value", value))
		return nil
	}

	expected := signature.Sign(c.secret, name, parts[0], parts[1])
	if !signature.Equal(parts[2], expected) {
		c.log.Warn("invalid cookie signature", slog.String("cookie", name), slog.String("value", value))
		return nil
	}

	payload, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil
	}
	return payload
}

// Delete overwrites the named cookie with an empty value, a zero Max-Age
// and an already-past expiry so the client discards it immediately.
func (c *Codec) Delete(w http.ResponseWriter, name string, opts ...Option) {
	options := applyOptions(c.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}
