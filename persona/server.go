package persona

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	gnet "github.com/panjf2000/gnet/v2"
	"go.uber.org/zap"
)

const localHost = "127.0.0.1"

// Handler turns one parsed request into the response written back on the
// connection. parseErr wraps ErrMalformed and req is nil when the inbound
// bytes did not parse. Returning nil closes the connection without a
// response.
type Handler func(req *Request, parseErr error) *Response

// Server is a single-shot HTTP/1.1 server: each accepted connection carries
// exactly one request and one response, then closes. The event loop is
// gnet's; the codec stays a pure bytes-in/bytes-out boundary. A response is
// written once a structurally complete request has arrived; a peer that
// half-closes before finishing one gets no response.
type Server struct {
	handler Handler
	cfg     serverConfig
}

// NewServer wraps h with the given options. A nil h falls back to
// DefaultHandler with the configured Server header.
func NewServer(h Handler, opts ...Option) *Server {
	cfg := defaultServerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h == nil {
		h = DefaultHandler(cfg.serverHeader)
	}
	return &Server{handler: h, cfg: cfg}
}

// Bind listens on 127.0.0.1:port and blocks serving connections until
// shutdown. A taken port surfaces as ErrAddrInUse.
func (s *Server) Bind(port uint16) error {
	return s.ListenAndServe(fmt.Sprintf("%s:%d", localHost, port))
}

// ListenAndServe is the general form of Bind for arbitrary listen addresses.
func (s *Server) ListenAndServe(addr string) error {
	if addr == "" {
		return fmt.Errorf("missing address")
	}
	protoAddr := ensureProtoAddr(addr)
	opts := append([]gnet.Option{gnet.WithLogger(s.cfg.logger.Sugar())}, s.cfg.opts...)
	s.cfg.logger.Info("listening", zap.String("addr", protoAddr))
	err := gnet.Run(newEventHandler(s.handler, s.cfg), protoAddr, opts...)
	if errors.Is(err, syscall.EADDRINUSE) {
		return fmt.Errorf("%s: %w", addr, ErrAddrInUse)
	}
	return err
}

func ensureProtoAddr(addr string) string {
	if strings.Contains(addr, "://") {
		return addr
	}
	return "tcp://" + addr
}

const defaultBody = `<html>
    <p>Hello, world!</p>
</html>
`

// DefaultHandler answers every connection, well-formed or not, with a fixed
// HTML body.
func DefaultHandler(serverName string) Handler {
	return func(*Request, error) *Response {
		return NewMessageBuilder().
			Header(Header{Name: "Server", Value: serverName}).
			Header(Header{Name: "Content-Type", Value: "text/html"}).
			Header(Header{Name: "Content-Length", Value: strconv.Itoa(len(defaultBody))}).
			Body([]byte(defaultBody)).
			Build()
	}
}
