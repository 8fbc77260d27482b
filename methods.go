package weblayer

import "strings"

// Method is a handler method invoked for a dispatched request. It may
// return a Result for the normaliser, a nil Result after mutating the
// response buffer directly, or an error - an HTTPError for an intentional
// status, anything else for an unexpected failure.
type Method func(ctx Context, args ...string) (Result, error)

// Methods is a handler's capability set: the explicitly exposed methods,
// keyed by lowercase name. Only names present here are dispatchable;
// everything else is method-not-found.
type Methods map[string]Method

// Select resolves a method name case-insensitively, or returns nil. HEAD
// falls back to GET when no dedicated head method is exposed, so handlers
// answer HEAD requests for free.
func (m Methods) Select(name string) Method {
	if len(m) == 0 {
		return nil
	}

	name = strings.ToLower(name)
	if method, ok := m[name]; ok {
		return method
	}
	if name == "head" {
		return m["get"]
	}
	return nil
}
