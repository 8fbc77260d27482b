package weblayer

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/weblayer/pkg/cookie"
	"github.com/dmitrymomot/weblayer/pkg/logger"
	"github.com/dmitrymomot/weblayer/pkg/secret"
	"github.com/dmitrymomot/weblayer/pkg/xsrf"
)

// App is the composition root: it validates configuration once at
// startup and wires a fresh dispatch pipeline for every request. The only
// state shared between requests is the immutable signing secret inside
// the cookie codec.
type App struct {
	codec       *cookie.Codec
	log         *slog.Logger
	encode      Encoder
	checkXSRF   bool
	debugErrors bool
}

// AppOption configures an App.
type AppOption func(*App)

// WithAppLogger sets the logger shared by the codec and dispatchers.
func WithAppLogger(log *slog.Logger) AppOption {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithAppEncoder replaces the JSON encoder used by the normaliser
// fallback path.
func WithAppEncoder(encode Encoder) AppOption {
	return func(a *App) {
		if encode != nil {
			a.encode = encode
		}
	}
}

// New validates cfg and builds the App. All required configuration is
// checked here; a bad secret or cookie setup prevents startup.
func New(cfg Config, opts ...AppOption) (*App, error) {
	a := &App{
		log:         slog.Default(),
		checkXSRF:   cfg.CheckXSRF,
		debugErrors: cfg.DebugErrors,
	}
	for _, opt := range opts {
		opt(a)
	}

	sec, err := secret.New(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	codec, err := cookie.NewFromConfig(sec.Bytes(), cfg.Cookie, cookie.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.codec = codec

	return a, nil
}

// Codec exposes the app's signed cookie codec for use outside the
// dispatch pipeline.
func (a *App) Codec() *cookie.Codec {
	return a.codec
}

// Guard builds a request-scoped XSRF guard, for handlers that need
// Token or InputTag while rendering forms.
func (a *App) Guard(w http.ResponseWriter, r *http.Request) *xsrf.Guard {
	return xsrf.New(w, r, a.codec)
}

// Dispatcher wires a complete per-request pipeline: fresh buffer and
// normaliser, a new guard, and the app-wide flags.
func (a *App) Dispatcher(w http.ResponseWriter, r *http.Request, methods Methods) *Dispatcher {
	opts := []DispatchOption{
		WithLogger(a.log),
		WithEncoder(a.encode),
	}
	if a.checkXSRF {
		opts = append(opts, WithGuard(a.Guard(w, r)))
	}
	if a.debugErrors {
		opts = append(opts, WithErrorPassThrough())
	}
	return NewDispatcher(NewContext(w, r), methods, opts...)
}

// Handler adapts a method set to http.HandlerFunc, dispatching on the
// request's verb. With debug errors enabled an unexpected handler error
// panics so a development-time recovery layer can render it.
func (a *App) Handler(methods Methods) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := a.Dispatcher(w, r, methods).Dispatch(r.Method)
		if err != nil {
			panic(err)
		}
		if err := resp.Render(w, r); err != nil {
			a.log.Error("response write failed",
				logger.Error(err),
				logger.Path(r.URL.Path),
				logger.Component("weblayer"),
			)
		}
	}
}
