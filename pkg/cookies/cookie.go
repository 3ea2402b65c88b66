package cookies

import (
	"fmt"
	"strings"
)

// Cookie is a single name/value pair taken from a Cookie request header.
// Cookie is comparable, so == compares both fields.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewCookie returns a Cookie after checking that name is a non-empty
// HTTP token. The value is not checked: it holds decoded text and may be
// empty or contain any characters.
func NewCookie(name, value string) (Cookie, error) {
	if name == "" {
		return Cookie{}, fmt.Errorf("%w: empty cookie name", ErrInvalidArgument)
	}
	if !isToken(name) {
		return Cookie{}, fmt.Errorf("%w: cookie name %q is not a token", ErrInvalidArgument, name)
	}
	return Cookie{Name: name, Value: value}, nil
}

// String returns the pair as name=value.
func (c Cookie) String() string {
	return c.Name + "=" + c.Value
}

// Compare orders cookies by name, then by value. It is suitable for
// slices.SortFunc.
func Compare(a, b Cookie) int {
	if n := strings.Compare(a.Name, b.Name); n != 0 {
		return n
	}
	return strings.Compare(a.Value, b.Value)
}
