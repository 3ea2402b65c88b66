package cookies

import (
	"fmt"
	"strings"

	"github.com/warpdl/cookieparse/pkg/logger"
)

// Parser turns Cookie header values into collections. A Parser holds only
// configuration and may be shared between goroutines. The zero value
// URL-decodes and logs nothing, like NewParser().
type Parser struct {
	decode DecodeFunc
	log    logger.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithDecoder sets the function applied to every raw cookie value. A nil
// decoder keeps the current one.
func WithDecoder(decode DecodeFunc) Option {
	return func(p *Parser) {
		if decode != nil {
			p.decode = decode
		}
	}
}

// WithLogger makes the parser report rejected cookies to l at warning
// level. Only cookie names are logged, never values.
func WithLogger(l logger.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// NewParser returns a Parser that URL-decodes values and logs nothing,
// adjusted by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		decode: URLDecode,
		log:    logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses header with the default URL decoding.
func Parse(header string) Cookies {
	return defaultParser.Parse(header)
}

// ParseWith parses header using decode for the values. A nil decode means
// URL decoding.
func ParseWith(header string, decode DecodeFunc) Cookies {
	if decode == nil {
		decode = URLDecode
	}
	return parse(header, decode, defaultParser.log)
}

// ParseRequest reads the Cookie header from src and parses it with the
// default URL decoding. A missing header gives an empty collection.
func ParseRequest(src HeaderSource) (Cookies, error) {
	return defaultParser.ParseRequest(src)
}

// ParseRequestWith is ParseRequest with a caller supplied decoder.
func ParseRequestWith(src HeaderSource, decode DecodeFunc) (Cookies, error) {
	if decode == nil {
		decode = URLDecode
	}
	return NewParser(WithDecoder(decode)).ParseRequest(src)
}

// Parse scans header for name=value pairs and decodes each value. Entries
// that do not match the cookie grammar are skipped and entries whose value
// is rejected by the decoder are dropped; neither is an error.
func (p *Parser) Parse(header string) Cookies {
	return parse(header, p.decode, p.log)
}

// ParseRequest looks up the Cookie header through src and parses it. It
// fails only if src is nil.
func (p *Parser) ParseRequest(src HeaderSource) (Cookies, error) {
	if src == nil {
		return Cookies{}, fmt.Errorf("%w: nil header source", ErrInvalidArgument)
	}
	header, ok := src.Header(strings.ToLower(CookieHeader))
	if !ok {
		return Cookies{}, nil
	}
	return p.Parse(header), nil
}

func parse(header string, decode DecodeFunc, log logger.Logger) Cookies {
	if decode == nil {
		decode = URLDecode
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	var list []Cookie
	s := newScanner(header)
	for s.Next() {
		raw := s.Pair()
		value, ok := decode(raw.value)
		if !ok {
			log.Warning("dropping cookie %q: value rejected by decoder", raw.name)
			continue
		}
		list = append(list, Cookie{Name: raw.name, Value: value})
	}
	// list is owned here, so no copy is needed.
	return Cookies{list: list}
}
