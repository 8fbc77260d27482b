package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CookieName records a cookie name under the key "cookie".
func CookieName(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Method records the dispatched handler method under the key "method".
func Method(name string) slog.Attr {
	return slog.String("method", name)
}

// Path records the request path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// StatusCode records the response status under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
