package cookies

import "errors"

var (
	// ErrInvalidArgument is returned when an API is called with an argument
	// it cannot accept, such as a nil HeaderSource or an empty cookie name.
	ErrInvalidArgument = errors.New("cookies: invalid argument")
	// ErrUnknownDecoder is returned by DecoderByName for unregistered names.
	ErrUnknownDecoder = errors.New("cookies: unknown decoder")
)
