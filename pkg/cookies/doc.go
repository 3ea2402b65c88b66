// Package cookies parses the HTTP Cookie request header into an ordered,
// immutable collection of name/value pairs.
//
// Parsing is forgiving: text that does not look like name=value is skipped,
// entries may be separated by ';' or ',', and a value that the decode
// function rejects drops only that one cookie. Parse never returns an error
// for malformed input.
//
//	c := cookies.Parse(`sid=abc123; theme="dark", lang=en`)
//	sid, ok := c.Get("sid")
//
// Values are percent-decoded by default ('+' is a space). Use ParseWith or
// NewParser(WithDecoder(...)) to keep raw values or plug in another decoder.
package cookies
