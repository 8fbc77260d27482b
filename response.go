package weblayer

import (
	"fmt"
	"maps"
	"net/http"
)

const (
	// JSONContentType is set on responses produced by the normaliser's
	// JSON fallback path.
	JSONContentType = "application/json; charset=UTF-8"

	textContentType  = "text/html; charset=UTF-8"
	plainContentType = "text/plain; charset=utf-8"
)

// Response renders itself onto an http.ResponseWriter. Both the response
// buffer and delegate handlers satisfy it; it is the terminal type of the
// dispatch pipeline.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Buffer is the owned, mutable response accumulator for one in-flight
// request. Every request constructs its own; it is never shared between
// requests. Handler methods may mutate it directly (Redirect, Error) and
// return a nil Result, or leave it to the normaliser.
type Buffer struct {
	status int
	header http.Header
	body   []byte
}

// NewBuffer returns an empty 200 response buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

// Status returns the response status code.
func (b *Buffer) Status() int {
	return b.status
}

// SetStatus sets the response status code.
func (b *Buffer) SetStatus(code int) {
	b.status = code
}

// Header returns the response headers for mutation.
func (b *Buffer) Header() http.Header {
	return b.header
}

// Body returns the current response body.
func (b *Buffer) Body() []byte {
	return b.body
}

// SetRawBody assigns body verbatim, leaving the content type untouched.
func (b *Buffer) SetRawBody(body []byte) {
	b.body = body
}

// SetTextBody assigns a textual body, applying the charset-aware default
// content type unless one was already set.
func (b *Buffer) SetTextBody(body string) {
	if b.header.Get("Content-Type") == "" {
		b.header.Set("Content-Type", textContentType)
	}
	b.body = []byte(body)
}

// Redirect turns the buffer into a redirect to location: 302 by default,
// 301 when permanent.
func (b *Buffer) Redirect(location string, permanent bool) {
	if permanent {
		b.status = http.StatusMovedPermanently
	} else {
		b.status = http.StatusFound
	}
	b.header.Set("Location", location)
	b.body = nil
}

// Error turns the buffer into a generic error response for status. The
// body deliberately carries no diagnostic detail; that belongs in the
// server logs.
func (b *Buffer) Error(status int) {
	b.status = status
	b.header.Set("Content-Type", plainContentType)
	b.body = fmt.Appendf(nil, "%d %s", status, http.StatusText(status))
}

// Render writes the accumulated status, headers and body to w.
func (b *Buffer) Render(w http.ResponseWriter, _ *http.Request) error {
	maps.Copy(w.Header(), b.header)
	w.WriteHeader(b.status)
	_, err := w.Write(b.body)
	return err
}

// delegateResponse adapts a replacement http.Handler to the Response
// interface.
type delegateResponse struct {
	handler http.Handler
}

func (d delegateResponse) Render(w http.ResponseWriter, r *http.Request) error {
	d.handler.ServeHTTP(w, r)
	return nil
}
