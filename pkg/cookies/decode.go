package cookies

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DecodeFunc turns the raw text of a cookie value into the value stored in
// the collection. Returning false rejects the cookie: it is left out of the
// result and parsing continues with the next entry.
//
// The raw text never carries the surrounding double quotes of a quoted
// value. A DecodeFunc should be deterministic and must not block.
type DecodeFunc func(raw string) (string, bool)

// URLDecode percent-decodes raw with '+' read as a space, the same rules as
// application/x-www-form-urlencoded. A malformed escape such as "%D" or
// "%zz" rejects the value. Every byte that does not start a valid UTF-8
// sequence is replaced with its own U+FFFD, so "%FF%FF" decodes to two.
func URLDecode(raw string) (string, bool) {
	v, err := url.QueryUnescape(raw)
	if err != nil {
		return "", false
	}
	if !utf8.ValidString(v) {
		v = replaceInvalidUTF8(v)
	}
	return v, true
}

// replaceInvalidUTF8 relies on range yielding utf8.RuneError once per
// invalid byte. An encoded U+FFFD already in s is kept as is.
func replaceInvalidUTF8(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2*utf8.UTFMax)
	for _, r := range s {
		b.WriteRune(r)
	}
	return b.String()
}

// StrictURLDecode is URLDecode that also rejects values whose decoded form
// is not valid UTF-8 or contains ASCII control characters.
func StrictURLDecode(raw string) (string, bool) {
	v, err := url.QueryUnescape(raw)
	if err != nil || !utf8.ValidString(v) {
		return "", false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 || v[i] == 0x7f {
			return "", false
		}
	}
	return v, true
}

// Identity keeps the raw value as it appeared in the header.
func Identity(raw string) (string, bool) {
	return raw, true
}

// base64Encodings is the order Base64Decode tries encodings in.
var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
	base64.RawURLEncoding,
}

// Base64Decode decodes standard or URL-safe base64, padded or not. Values
// that none of them accept are rejected.
func Base64Decode(raw string) (string, bool) {
	for _, enc := range base64Encodings {
		b, err := enc.DecodeString(raw)
		if err == nil {
			return string(b), true
		}
	}
	return "", false
}

// Chain returns a DecodeFunc that feeds raw through each decoder in turn.
// The first rejection rejects the value. An empty chain is Identity.
func Chain(decoders ...DecodeFunc) DecodeFunc {
	return func(raw string) (string, bool) {
		v := raw
		for _, d := range decoders {
			var ok bool
			if v, ok = d(v); !ok {
				return "", false
			}
		}
		return v, true
	}
}

// decoders maps the names accepted by DecoderByName.
var decoders = map[string]DecodeFunc{
	"url":      URLDecode,
	"strict":   StrictURLDecode,
	"raw":      Identity,
	"identity": Identity,
	"none":     Identity,
	"base64":   Base64Decode,
}

// DecoderByName returns the decoder registered under name. The lookup is
// case-insensitive.
func DecoderByName(name string) (DecodeFunc, error) {
	d, ok := decoders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecoder, name)
	}
	return d, nil
}
