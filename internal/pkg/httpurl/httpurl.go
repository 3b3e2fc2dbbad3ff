package httpurl

import (
	"net/http"
	"strings"
)

// Scheme returns the scheme the client used, honoring X-Forwarded-Proto.
func Scheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	if r.TLS != nil {
		return "https"
	}

	return "http"
}

// Origin returns scheme://host for r.
func Origin(r *http.Request) string {
	return Scheme(r) + "://" + r.Host
}
