package persona

// MessageBuilder accumulates a response. Every method takes the builder by
// value and returns a new one; appends copy rather than alias, so keeping an
// intermediate builder around and branching from it is safe.
type MessageBuilder struct {
	version Version
	code    Code
	headers []Header
	payload []byte
}

// NewMessageBuilder starts from HTTP/1.1, Success, no headers, no body.
func NewMessageBuilder() MessageBuilder {
	return MessageBuilder{version: HTTP11, code: Success}
}

// Version replaces the protocol version.
func (b MessageBuilder) Version(v Version) MessageBuilder {
	b.version = v
	return b
}

// Code replaces the status code.
func (b MessageBuilder) Code(c Code) MessageBuilder {
	b.code = c
	return b
}

// Header appends h; order is kept and duplicate names are allowed.
func (b MessageBuilder) Header(h Header) MessageBuilder {
	b.headers = append(b.headers[:len(b.headers):len(b.headers)], h)
	return b
}

// Body appends more payload bytes; successive calls accumulate.
func (b MessageBuilder) Body(p []byte) MessageBuilder {
	b.payload = append(b.payload[:len(b.payload):len(b.payload)], p...)
	return b
}

// Build produces the response. Both frames are always present; the
// DataFrame stays even when the payload is empty.
func (b MessageBuilder) Build() *Response {
	return &Response{
		Version: b.version,
		Code:    b.code,
		Frames: []Frame{
			HeadersFrame{Headers: b.headers},
			DataFrame{Payload: b.payload},
		},
	}
}
