package cookiestore

import (
	"errors"
	"strings"
)

// Format identifies the on-disk layout of a cookie store.
type Format int

const (
	// FormatUnknown means the store could not be identified.
	FormatUnknown Format = iota
	// FormatFirefox is the Firefox moz_cookies SQLite schema.
	FormatFirefox
	// FormatChrome is the Chrome cookies SQLite schema.
	FormatChrome
	// FormatNetscape is the tab-separated Netscape cookie file.
	FormatNetscape
)

func (f Format) String() string {
	switch f {
	case FormatFirefox:
		return "Firefox"
	case FormatChrome:
		return "Chrome"
	case FormatNetscape:
		return "Netscape"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupportedFormat is returned for files that are not a known cookie store.
	ErrUnsupportedFormat = errors.New("unsupported cookie store format")
	// ErrEmptyStore is returned for zero-length store files.
	ErrEmptyStore = errors.New("cookie store is empty")
	// ErrNoBrowserStore is returned when no known browser has a usable store.
	ErrNoBrowserStore = errors.New("no supported browser cookie store found")
)

// Entry is one cookie read from a store. Value is SENSITIVE and must not be
// logged or put into error messages.
type Entry struct {
	Name  string
	Value string
	Host  string
	Path  string
}

// Source describes where entries were imported from.
type Source struct {
	Path   string
	Format Format
	// Browser is set when the store was found by DetectBrowser.
	Browser string
	// Count is the number of entries that matched the domain.
	Count int
}

// BuildHeader renders entries as a Cookie header value, "a=1; b=2", in the
// order given.
func BuildHeader(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Name + "=" + e.Value
	}
	return strings.Join(parts, "; ")
}

// matchesDomain reports whether a cookie host applies to domain: an exact
// match, the dot-prefixed form, or any subdomain.
func matchesDomain(host, domain string) bool {
	dotDomain := "." + domain
	return host == domain || host == dotDomain || strings.HasSuffix(host, dotDomain)
}
