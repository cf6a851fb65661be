package persona

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

var serializePool bytebufferpool.Pool

func (r *Request) Bytes() []byte  { return messageBytes(r) }
func (r *Response) Bytes() []byte { return messageBytes(r) }

// AppendTo writes the request's wire form into buf. The server serializes
// into pooled buffers on the connection write path.
func (r *Request) AppendTo(buf *bytebufferpool.ByteBuffer) {
	_, _ = buf.WriteString(r.Method.String())
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(r.Target)
	_, _ = buf.WriteString(" HTTP/")
	_, _ = buf.WriteString(r.Version.String())
	_, _ = buf.WriteString(crlf)
	appendFrames(buf, r.Frames)
}

// AppendTo writes the response's wire form into buf.
func (r *Response) AppendTo(buf *bytebufferpool.ByteBuffer) {
	_, _ = buf.WriteString("HTTP/")
	_, _ = buf.WriteString(r.Version.String())
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(strconv.Itoa(int(r.Code.Status())))
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(r.Code.String())
	_, _ = buf.WriteString(crlf)
	appendFrames(buf, r.Frames)
}

// appendFrames emits header lines in frame order, then a single blank-line
// separator, then all payload bytes. Payloads always land after the
// separator no matter where their DataFrames sit in the sequence.
func appendFrames(buf *bytebufferpool.ByteBuffer, frames []Frame) {
	for _, f := range frames {
		hf, ok := f.(HeadersFrame)
		if !ok {
			continue
		}
		for _, h := range hf.Headers {
			_, _ = buf.WriteString(h.Name)
			_, _ = buf.WriteString(": ")
			_, _ = buf.WriteString(h.Value)
			_, _ = buf.WriteString(crlf)
		}
	}
	_, _ = buf.WriteString(crlf)
	for _, f := range frames {
		if df, ok := f.(DataFrame); ok {
			_, _ = buf.Write(df.Payload)
		}
	}
}

func messageBytes(m Message) []byte {
	buf := serializePool.Get()
	m.AppendTo(buf)
	out := append([]byte(nil), buf.Bytes()...)
	serializePool.Put(buf)
	return out
}
