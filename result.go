package weblayer

import "net/http"

// Result is the value a handler method hands back to the dispatch
// pipeline. It is a closed union: the only variants are Raw, Text, JSON,
// Delegate and nil, and the normaliser handles each explicitly. A nil
// Result means the handler already mutated the response buffer (redirect,
// error page) and wants it sent as-is.
type Result interface {
	isResult()
}

type rawResult struct{ body []byte }

type textResult struct{ body string }

type jsonResult struct{ value any }

type delegateResult struct{ handler http.Handler }

func (rawResult) isResult()      {}
func (textResult) isResult()     {}
func (jsonResult) isResult()     {}
func (delegateResult) isResult() {}

// Raw marks body as the literal response payload, written without any
// content-type adjustment.
func Raw(body []byte) Result {
	return rawResult{body: body}
}

// Text marks body as the textual response payload. The buffer applies its
// charset-aware default content type when none was set explicitly.
func Text(body string) Result {
	return textResult{body: body}
}

// JSON marks value for serialisation through the pipeline's JSON encoder.
func JSON(value any) Result {
	return jsonResult{value: value}
}

// Delegate hands the whole response over to h, bypassing the response
// buffer entirely. Used to splice a complete sub-application (file
// server, reverse proxy) into the pipeline.
func Delegate(h http.Handler) Result {
	return delegateResult{handler: h}
}
