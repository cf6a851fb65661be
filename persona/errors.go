package persona

import "errors"

const crlf = "\r\n"

var (
	// ErrMalformed is returned by Parse for any input that is not a single
	// well-formed HTTP/1.1 request. Parsing fails wholly: no partial message
	// is ever returned alongside it.
	ErrMalformed = errors.New("malformed message")

	// ErrAddrInUse is returned by the server when the listen address is
	// already taken.
	ErrAddrInUse = errors.New("address in use")

	errNeedMoreData = errors.New("incomplete request")
)
