// Package weblayer is a small web-request-handling layer built around a
// tamper-evident signed-cookie protocol and a dispatch pipeline with
// cross-site request forgery protection.
//
// Every request flows through the same stages: resolve the handler method
// from an explicit capability set, validate the XSRF token on browser form
// POSTs, invoke the method, classify any failure into a well-formed HTTP
// error response, and normalise the method's return value into the
// response body. Handler failures never escape the pipeline as raw errors
// under normal configuration.
//
// The pipeline is stateless across requests: dispatcher, response buffer
// and XSRF guard are constructed per request and discarded. The only
// long-lived shared state is the immutable signing secret, so no locking
// is needed anywhere.
//
// Basic usage:
//
//	var cfg weblayer.Config
//	config.MustLoad(&cfg)
//
//	app, err := weblayer.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hello := weblayer.Methods{
//	    "get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
//	        return weblayer.Text("<h1>Hello world</h1>"), nil
//	    },
//	}
//
//	http.Handle("/", app.Handler(hello))
//
// Handler methods return one of the closed set of result variants - Raw,
// Text, JSON, Delegate or nil - or an HTTPError to control the response
// status directly.
package weblayer
