package persona

import "github.com/valyala/bytebufferpool"

// Header is a single name/value pair from a message's header section. Both
// fields are non-empty for any Header produced by Parse.
type Header struct {
	Name  string
	Value string
}

// Frame is one structural unit of a message: either a block of headers or a
// run of payload bytes. The only variants are HeadersFrame and DataFrame.
type Frame interface{ frame() }

// HeadersFrame carries an ordered header list. Order matches the wire and
// duplicate names are kept as-is.
type HeadersFrame struct {
	Headers []Header
}

// DataFrame carries raw payload bytes.
type DataFrame struct {
	Payload []byte
}

func (HeadersFrame) frame() {}
func (DataFrame) frame()    {}

// Message is either a *Request or a *Response. A message exclusively owns
// its frames; frames exclusively own their header list or payload.
type Message interface {
	// Bytes renders the message into its wire form. Serialization is total:
	// any message built through the data model produces valid bytes.
	Bytes() []byte
	// AppendTo writes the wire form into a pooled buffer.
	AppendTo(buf *bytebufferpool.ByteBuffer)
	message()
}

// Request is an inbound HTTP/1.1 message as produced by Parse.
type Request struct {
	Method  Method
	Target  string
	Version Version
	Frames  []Frame
}

// Response is an outbound HTTP/1.1 message, normally produced by a
// MessageBuilder.
type Response struct {
	Version Version
	Code    Code
	Frames  []Frame
}

func (*Request) message()  {}
func (*Response) message() {}

// NewRequest assembles a Request with the canonical frame layout: one
// HeadersFrame, followed by one DataFrame when payload is non-nil.
func NewRequest(method Method, target string, version Version, headers []Header, payload []byte) *Request {
	frames := []Frame{HeadersFrame{Headers: headers}}
	if payload != nil {
		frames = append(frames, DataFrame{Payload: payload})
	}
	return &Request{Method: method, Target: target, Version: version, Frames: frames}
}

// Headers returns the header list of the first HeadersFrame, or nil.
func (r *Request) Headers() []Header { return frameHeaders(r.Frames) }

// Payload returns the concatenated bytes of all DataFrames.
func (r *Request) Payload() []byte { return framePayload(r.Frames) }

// Headers returns the header list of the first HeadersFrame, or nil.
func (r *Response) Headers() []Header { return frameHeaders(r.Frames) }

// Payload returns the concatenated bytes of all DataFrames.
func (r *Response) Payload() []byte { return framePayload(r.Frames) }

func frameHeaders(frames []Frame) []Header {
	for _, f := range frames {
		switch f := f.(type) {
		case HeadersFrame:
			return f.Headers
		case DataFrame:
		}
	}
	return nil
}

func framePayload(frames []Frame) []byte {
	var out []byte
	for _, f := range frames {
		switch f := f.(type) {
		case HeadersFrame:
		case DataFrame:
			out = append(out, f.Payload...)
		}
	}
	return out
}
