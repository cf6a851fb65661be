package persona

import (
	"fmt"
	"strings"
)

// Method is the closed set of HTTP/1.1 request methods.
type Method int

const (
	GET Method = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var methodNames = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

// String returns the upper-case wire form of the method.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod matches tok case-insensitively against the method set.
func ParseMethod(tok string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(tok, name) {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("unknown method %q: %w", tok, ErrMalformed)
}
