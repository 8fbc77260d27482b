// Package xsrf defends state-changing requests against cross-site request
// forgery using the double-submit pattern: an unguessable per-session token
// stored in a signed cookie must be echoed back in the _xsrf form field of
// every browser form POST.
//
// GET and other safe verbs are never checked, and neither are POSTs made
// via XMLHttpRequest - browsers refuse to attach custom headers like
// X-Requested-With to cross-site form submissions, so their presence
// already proves same-origin.
//
//	guard := xsrf.New(w, r, codec)
//	fmt.Fprintf(w, "<form method=POST>%s...</form>", guard.InputTag())
//
//	if err := guard.Validate(); err != nil {
//	    // reject with 403
//	}
package xsrf
