package weblayer_test

import (
	"testing"

	"github.com/dmitrymomot/weblayer"
)

func TestMethods_Select(t *testing.T) {
	t.Parallel()

	noop := func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
		return nil, nil
	}

	tests := []struct {
		name    string
		methods weblayer.Methods
		lookup  string
		found   bool
	}{
		{"exposed method", weblayer.Methods{"get": noop}, "get", true},
		{"case insensitive", weblayer.Methods{"get": noop}, "GET", true},
		{"unexposed method", weblayer.Methods{"get": noop}, "post", false},
		{"head falls back to get", weblayer.Methods{"get": noop}, "HEAD", true},
		{"explicit head wins", weblayer.Methods{"head": noop}, "HEAD", true},
		{"head without get", weblayer.Methods{"post": noop}, "HEAD", false},
		{"nil set", nil, "get", false},
		{"empty set", weblayer.Methods{}, "get", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.methods.Select(tt.lookup)
			if (got != nil) != tt.found {
				t.Errorf("Select(%q) found = %v, want %v", tt.lookup, got != nil, tt.found)
			}
		})
	}
}
