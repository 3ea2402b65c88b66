package cookies

import (
	"encoding/json"
	"hash/fnv"
	"iter"
	"slices"
	"strings"
)

// Cookies is an ordered, read-only list of cookies. The order is the order
// in which the pairs appeared in the header, and a name may appear more
// than once.
//
// The zero value is an empty collection. A Cookies value never changes
// after it is built and is safe for concurrent use.
type Cookies struct {
	list []Cookie
}

// NewCookies returns a collection holding a copy of list, so later changes
// to list are not visible through the collection. A nil list gives an
// empty collection.
func NewCookies(list []Cookie) Cookies {
	return Cookies{list: slices.Clone(list)}
}

// Len returns the number of cookies, duplicates included.
func (c Cookies) Len() int {
	return len(c.list)
}

// At returns the i'th cookie. It panics if i is out of range.
func (c Cookies) At(i int) Cookie {
	return c.list[i]
}

// All returns an iterator over the cookies in header order. Each call
// starts a fresh traversal.
func (c Cookies) All() iter.Seq[Cookie] {
	return func(yield func(Cookie) bool) {
		for _, ck := range c.list {
			if !yield(ck) {
				return
			}
		}
	}
}

// Pairs returns an iterator over name/value pairs in header order, for use
// in range loops and iterator pipelines.
func (c Cookies) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, ck := range c.list {
			if !yield(ck.Name, ck.Value) {
				return
			}
		}
	}
}

// Slice returns a copy of the cookies in header order.
func (c Cookies) Slice() []Cookie {
	return slices.Clone(c.list)
}

// Get returns the value of the first cookie named name. Names are compared
// exactly, without case folding.
func (c Cookies) Get(name string) (string, bool) {
	for _, ck := range c.list {
		if ck.Name == name {
			return ck.Value, true
		}
	}
	return "", false
}

// Has reports whether a cookie named name is present.
func (c Cookies) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Values returns the values of every cookie named name, in header order.
func (c Cookies) Values(name string) []string {
	var values []string
	for _, ck := range c.list {
		if ck.Name == name {
			values = append(values, ck.Value)
		}
	}
	return values
}

// Names returns the distinct cookie names in order of first appearance.
func (c Cookies) Names() []string {
	seen := make(map[string]struct{}, len(c.list))
	names := make([]string, 0, len(c.list))
	for _, ck := range c.list {
		if _, ok := seen[ck.Name]; ok {
			continue
		}
		seen[ck.Name] = struct{}{}
		names = append(names, ck.Name)
	}
	return names
}

// Filter returns a new collection with the cookies for which keep returns
// true, in their original order.
func (c Cookies) Filter(keep func(Cookie) bool) Cookies {
	var out []Cookie
	for _, ck := range c.list {
		if keep(ck) {
			out = append(out, ck)
		}
	}
	return Cookies{list: out}
}

// Equal reports whether c and other hold the same cookies in the same order.
func (c Cookies) Equal(other Cookies) bool {
	return slices.Equal(c.list, other.list)
}

// Hash returns a 64-bit FNV-1a hash of the ordered contents. Collections
// that are Equal have the same hash.
func (c Cookies) Hash() uint64 {
	h := fnv.New64a()
	for _, ck := range c.list {
		h.Write([]byte(ck.Name))
		h.Write([]byte{0})
		h.Write([]byte(ck.Value))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// String lists the pairs as Cookies[a=b, c=d].
func (c Cookies) String() string {
	var b strings.Builder
	b.WriteString("Cookies[")
	for i, ck := range c.list {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ck.String())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the collection as an ordered array of
// {"name": ..., "value": ...} objects.
func (c Cookies) MarshalJSON() ([]byte, error) {
	if c.list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.list)
}
