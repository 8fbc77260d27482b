package weblayer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/weblayer/pkg/logger"
	"github.com/dmitrymomot/weblayer/pkg/xsrf"
)

// Dispatcher runs one request through the pipeline: method resolution,
// XSRF guard, invocation, failure classification, normalisation. It is
// scoped to a single in-flight request and discarded afterwards.
type Dispatcher struct {
	ctx     Context
	methods Methods
	guard   *xsrf.Guard
	buf     *Buffer
	norm    *Normaliser
	log     *slog.Logger

	// encode is held until the normaliser is built in NewDispatcher.
	encode Encoder

	checkXSRF   bool
	passThrough bool
}

// DispatchOption configures a Dispatcher.
type DispatchOption func(*Dispatcher)

// WithGuard enables XSRF validation with the given per-request guard.
func WithGuard(g *xsrf.Guard) DispatchOption {
	return func(d *Dispatcher) {
		d.guard = g
		d.checkXSRF = g != nil
	}
}

// WithBuffer substitutes a prepared response buffer.
func WithBuffer(buf *Buffer) DispatchOption {
	return func(d *Dispatcher) {
		if buf != nil {
			d.buf = buf
		}
	}
}

// WithEncoder sets the JSON encoder used by the normaliser fallback.
func WithEncoder(encode Encoder) DispatchOption {
	return func(d *Dispatcher) {
		d.encode = encode
	}
}

// WithLogger sets the dispatcher's logger.
func WithLogger(log *slog.Logger) DispatchOption {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithErrorPassThrough makes Dispatch return unexpected handler errors to
// the caller instead of converting them to 500 responses. Development
// aid: lets a top-level diagnostic layer render the failure.
func WithErrorPassThrough() DispatchOption {
	return func(d *Dispatcher) {
		d.passThrough = true
	}
}

// NewDispatcher builds a request-scoped dispatcher. Collaborators are
// injected here, once, at construction; nothing is looked up per call.
func NewDispatcher(ctx Context, methods Methods, opts ...DispatchOption) *Dispatcher {
	d := &Dispatcher{
		ctx:     ctx,
		methods: methods,
		buf:     NewBuffer(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.norm == nil {
		d.norm = NewNormaliser(d.buf, d.encode)
	}
	return d
}

// Buffer exposes the owned response buffer so handler methods can mutate
// it before returning a nil Result.
func (d *Dispatcher) Buffer() *Buffer {
	return d.buf
}

// Dispatch resolves and runs the named method with the supplied
// arguments, never letting a handler failure escape as an error under
// normal configuration. The returned error is non-nil only when error
// pass-through is enabled and the handler failed unexpectedly.
func (d *Dispatcher) Dispatch(methodName string, args ...string) (Response, error) {
	method := d.methods.Select(methodName)
	if method == nil {
		d.log.Warn("method not found",
			logger.Method(methodName),
			logger.Component("dispatcher"),
		)
		return d.finish(d.failure(ErrMethodNotAllowed))
	}

	if d.checkXSRF {
		if err := d.guard.Validate(); err != nil {
			d.log.Warn("rejected cross-site request",
				logger.Error(err),
				logger.Method(methodName),
				logger.Component("dispatcher"),
			)
			return d.finish(d.failure(ErrForbidden))
		}
	}

	result, err := method(d.ctx, args...)
	if err != nil {
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			return d.finish(d.failure(httpErr))
		}
		if d.passThrough {
			return nil, err
		}
		d.log.Error("unhandled handler error",
			logger.Error(err),
			logger.Method(methodName),
			logger.Path(d.ctx.Request().URL.Path),
			logger.Component("dispatcher"),
		)
		return d.finish(d.failure(ErrInternalServerError))
	}

	return d.finish(result)
}

// failure shapes the buffer into an error response and returns a nil
// Result so normalisation passes the buffer through untouched.
func (d *Dispatcher) failure(httpErr HTTPError) Result {
	d.buf.Error(httpErr.Code)
	return nil
}

// finish feeds the outcome to the normaliser. A serialisation failure is
// the one fault the normaliser can produce; it is downgraded to a 500
// like any other unexpected error.
func (d *Dispatcher) finish(result Result) (Response, error) {
	resp, err := d.norm.Normalise(result)
	if err != nil {
		d.log.Error("response serialisation failed",
			logger.Error(err),
			logger.Component("dispatcher"),
		)
		d.buf.Error(http.StatusInternalServerError)
		return d.buf, nil
	}
	return resp, nil
}
