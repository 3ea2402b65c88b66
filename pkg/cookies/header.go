package cookies

import (
	"net/http"
	"strings"
)

// CookieHeader is the name of the request header the parser reads.
const CookieHeader = "Cookie"

// HeaderSource looks up a request header by name. Implementations decide
// how names are matched; the ones in this package are case-insensitive.
// The second result is false when the header is absent.
type HeaderSource interface {
	Header(name string) (string, bool)
}

// HeaderFunc adapts a plain function to HeaderSource.
type HeaderFunc func(name string) (string, bool)

// Header calls f(name).
func (f HeaderFunc) Header(name string) (string, bool) {
	return f(name)
}

// FromHTTPHeader returns a HeaderSource backed by h. Several field lines
// with the same name are joined with "; ", which is how HTTP/2 clients may
// split a Cookie header.
func FromHTTPHeader(h http.Header) HeaderSource {
	return HeaderFunc(func(name string) (string, bool) {
		values := h.Values(name)
		if len(values) == 0 {
			return "", false
		}
		return strings.Join(values, "; "), true
	})
}

// FromRequest returns a HeaderSource backed by the headers of r.
func FromRequest(r *http.Request) HeaderSource {
	return FromHTTPHeader(r.Header)
}
