package cookies

import (
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
)

// rawPair is one name=value match before the value is decoded.
type rawPair struct {
	name   string
	value  string
	quoted bool
}

// scanner walks a Cookie header and yields every
//
//	*WS token "=" cookie-value *WS [ ";" / "," ]
//
// it can find. Text that does not match is skipped one position at a time,
// so a malformed entry never stops the scan.
type scanner struct {
	src  string
	pos  int
	pair rawPair
}

func newScanner(header string) *scanner {
	return &scanner{src: header}
}

// Next advances to the next pair. It returns false once the header is
// exhausted.
func (s *scanner) Next() bool {
	for s.pos < len(s.src) {
		pair, end, ok := matchPair(s.src, s.pos)
		if ok {
			s.pair = pair
			s.pos = end
			return true
		}
		// Every start between pos and end reaches the same failing byte.
		if end > s.pos {
			s.pos = end
		} else {
			s.pos++
		}
	}
	return false
}

// Pair returns the pair found by the last successful call to Next.
func (s *scanner) Pair() rawPair {
	return s.pair
}

// matchPair tries to match a single cookie pair starting at i. On success
// end is the offset just past the match, including any trailing separator.
// On failure end is the offset at which the match broke down.
func matchPair(s string, i int) (pair rawPair, end int, ok bool) {
	p := skipSpace(s, i)
	start := p
	for p < len(s) && isTokenByte(s[p]) {
		p++
	}
	if p == start || p == len(s) || s[p] != '=' {
		return rawPair{}, p, false
	}
	pair.name = s[start:p]
	p++

	if p < len(s) && s[p] == '"' {
		q := p + 1
		for q < len(s) && isCookieOctet(s[q]) {
			q++
		}
		if q < len(s) && s[q] == '"' {
			pair.value = s[p+1 : q]
			pair.quoted = true
			p = q + 1
		}
		// An unterminated quote leaves an empty unquoted value at p.
	} else {
		v := p
		for p < len(s) && isCookieOctet(s[p]) {
			p++
		}
		pair.value = s[v:p]
	}

	p = skipSpace(s, p)
	if p < len(s) && (s[p] == ';' || s[p] == ',') {
		p++
	}
	return pair, p, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isTokenByte(b byte) bool {
	return b < utf8.RuneSelf && httpguts.IsTokenRune(rune(b))
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenByte(s[i]) {
			return false
		}
	}
	return true
}

// isCookieOctet reports whether b is a cookie-octet as defined by
// RFC 6265 section 4.1.1: %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E.
func isCookieOctet(b byte) bool {
	switch {
	case b == 0x21:
		return true
	case b >= 0x23 && b <= 0x2b:
		return true
	case b >= 0x2d && b <= 0x3a:
		return true
	case b >= 0x3c && b <= 0x5b:
		return true
	case b >= 0x5d && b <= 0x7e:
		return true
	}
	return false
}
