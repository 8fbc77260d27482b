package weblayer_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/weblayer"
	"github.com/dmitrymomot/weblayer/pkg/cookie"
	"github.com/dmitrymomot/weblayer/pkg/xsrf"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newDispatcher(t *testing.T, r *http.Request, methods weblayer.Methods, opts ...weblayer.DispatchOption) (*weblayer.Dispatcher, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	opts = append([]weblayer.DispatchOption{weblayer.WithLogger(quiet)}, opts...)
	return weblayer.NewDispatcher(weblayer.NewContext(w, r), methods, opts...), w
}

func render(t *testing.T, resp weblayer.Response, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, r))
	return w
}

func TestDispatch_Success(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	d, _ := newDispatcher(t, r, weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			return weblayer.Text("hello " + strings.Join(args, ",")), nil
		},
	})

	resp, err := d.Dispatch("GET", "a", "b")
	require.NoError(t, err)

	w := render(t, resp, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello a,b", w.Body.String())
}

func TestDispatch_MethodNotFound(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodDelete, "/", nil)

	d, _ := newDispatcher(t, r, weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			return nil, nil
		},
	})

	resp, err := d.Dispatch("DELETE")
	require.NoError(t, err, "method-not-found is an outcome, not an error")

	w := render(t, resp, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "405 Method Not Allowed", w.Body.String())
}

func TestDispatch_XSRF(t *testing.T) {
	t.Parallel()
	codec, err := cookie.New([]byte(testSecret))
	require.NoError(t, err)

	post := func(form url.Values) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r
	}
	methods := weblayer.Methods{
		"post": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			return weblayer.Text("posted"), nil
		},
	}

	t.Run("guard failure becomes 403", func(t *testing.T) {
		t.Parallel()
		r := post(url.Values{})
		w := httptest.NewRecorder()
		d := weblayer.NewDispatcher(weblayer.NewContext(w, r), methods,
			weblayer.WithLogger(quiet),
			weblayer.WithGuard(xsrf.New(w, r, codec)),
		)

		resp, err := d.Dispatch("POST")
		require.NoError(t, err, "guard failures must never propagate")

		rec := render(t, resp, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		t.Parallel()
		seed := httptest.NewRecorder()
		token := xsrf.New(seed, httptest.NewRequest(http.MethodGet, "/", nil), codec).Token()
		session := strings.SplitN(seed.Header().Get("Set-Cookie"), ";", 2)[0]

		r := post(url.Values{"_xsrf": {token}})
		r.Header.Set("Cookie", session)
		w := httptest.NewRecorder()
		d := weblayer.NewDispatcher(weblayer.NewContext(w, r), methods,
			weblayer.WithLogger(quiet),
			weblayer.WithGuard(xsrf.New(w, r, codec)),
		)

		resp, err := d.Dispatch("POST")
		require.NoError(t, err)
		rec := render(t, resp, r)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "posted", rec.Body.String())
	})

	t.Run("guard disabled skips validation", func(t *testing.T) {
		t.Parallel()
		r := post(url.Values{})
		d, _ := newDispatcher(t, r, methods)

		resp, err := d.Dispatch("POST")
		require.NoError(t, err)
		rec := render(t, resp, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDispatch_HandlerErrors(t *testing.T) {
	t.Parallel()

	methodsFor := func(err error) weblayer.Methods {
		return weblayer.Methods{
			"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
				return nil, err
			},
		}
	}

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		d, _ := newDispatcher(t, r, methodsFor(weblayer.ErrGone))

		resp, err := d.Dispatch("GET")
		require.NoError(t, err)
		rec := render(t, resp, r)
		assert.Equal(t, http.StatusGone, rec.Code)
	})

	t.Run("wrapped http error keeps its status", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		wrapped := errors.Join(errors.New("context"), weblayer.ErrConflict)
		d, _ := newDispatcher(t, r, methodsFor(wrapped))

		resp, err := d.Dispatch("GET")
		require.NoError(t, err)
		rec := render(t, resp, r)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unexpected error becomes 500", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		d, _ := newDispatcher(t, r, methodsFor(errors.New("database exploded")))

		resp, err := d.Dispatch("GET")
		require.NoError(t, err)
		rec := render(t, resp, r)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database exploded", "diagnostics belong in logs, not responses")
	})

	t.Run("pass-through returns the error", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		boom := errors.New("database exploded")
		d, _ := newDispatcher(t, r, methodsFor(boom), weblayer.WithErrorPassThrough())

		resp, err := d.Dispatch("GET")
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pass-through does not cover http errors", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		d, _ := newDispatcher(t, r, methodsFor(weblayer.ErrNotFound), weblayer.WithErrorPassThrough())

		resp, err := d.Dispatch("GET")
		require.NoError(t, err, "intentional http errors are outcomes even in debug mode")
		rec := render(t, resp, r)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDispatch_BufferMutation(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	var d *weblayer.Dispatcher
	d, _ = newDispatcher(t, r, weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			d.Buffer().Redirect("/login", false)
			return nil, nil
		},
	})

	resp, err := d.Dispatch("GET")
	require.NoError(t, err)

	rec := render(t, resp, r)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDispatch_EncoderFailureBecomes500(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	d, _ := newDispatcher(t, r, weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			return weblayer.JSON(make(chan int)), nil // not serialisable
		},
	})

	resp, err := d.Dispatch("GET")
	require.NoError(t, err)
	rec := render(t, resp, r)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
