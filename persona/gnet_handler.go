package persona

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	gnet "github.com/panjf2000/gnet/v2"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
)

type eventHandler struct {
	gnet.BuiltinEventEngine

	handler Handler
	cfg     serverConfig

	engine  gnet.Engine
	bufPool *bytebufferpool.Pool
}

func newEventHandler(h Handler, cfg serverConfig) *eventHandler {
	return &eventHandler{handler: h, cfg: cfg, bufPool: &bytebufferpool.Pool{}}
}

func (h *eventHandler) OnBoot(engine gnet.Engine) gnet.Action {
	h.engine = engine
	if len(h.cfg.shutdownSignals) > 0 {
		go h.handleSignals()
	}
	return gnet.None
}

func (h *eventHandler) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, h.cfg.shutdownSignals...)
	sig := <-sigCh
	h.cfg.logger.Info("shutting down", zap.Stringer("signal", sig))
	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.shutdownTimeout)
	defer cancel()
	if err := h.engine.Stop(ctx); err != nil {
		h.cfg.logger.Error("engine stop", zap.Error(err))
	}
}

func (h *eventHandler) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	c.SetContext(&connContext{})
	return nil, gnet.None
}

func (h *eventHandler) OnClose(c gnet.Conn, err error) gnet.Action {
	if ctx, ok := c.Context().(*connContext); ok {
		// A peer that went away mid-request never gets a response; the close
		// event arrives too late to write one.
		if len(ctx.buf) > 0 {
			h.cfg.logger.Debug("connection closed with incomplete request",
				zap.Int("buffered", len(ctx.buf)))
		}
		ctx.reset()
	}
	return gnet.None
}

// OnTraffic accumulates inbound bytes until one whole request is present,
// runs the handler, writes the serialized response and closes. One message
// per connection: no keep-alive, no pipelining.
func (h *eventHandler) OnTraffic(c gnet.Conn) gnet.Action {
	ctx, _ := c.Context().(*connContext)
	if ctx == nil {
		ctx = &connContext{}
		c.SetContext(ctx)
	}

	if n := c.InboundBuffered(); n > 0 {
		data, err := c.Next(n)
		if err != nil {
			h.cfg.logger.Error("read", zap.Error(err))
			return gnet.Close
		}
		ctx.append(data)
	}

	if err := complete(ctx.buf); errors.Is(err, errNeedMoreData) {
		if len(ctx.buf) > h.cfg.maxBufferBytes {
			h.cfg.logger.Warn("dropping connection, buffer cap exceeded",
				zap.Int("buffered", len(ctx.buf)),
				zap.String("remote", c.RemoteAddr().String()))
			return gnet.Close
		}
		return gnet.None
	}

	req, err := Parse(ctx.buf)
	ctx.reset()
	if err != nil {
		// The handler still gets a say on malformed input; the default
		// fixed-body handler answers it like anything else.
		h.cfg.logger.Warn("malformed request",
			zap.Error(err),
			zap.String("remote", c.RemoteAddr().String()))
	}

	resp := h.handler(req, err)
	if resp == nil {
		return gnet.Close
	}

	out := h.bufPool.Get()
	resp.AppendTo(out)
	_, werr := c.Write(out.Bytes())
	h.bufPool.Put(out)
	if werr != nil {
		h.cfg.logger.Error("write response", zap.Error(werr))
	}
	return gnet.Close
}

// complete reports whether buf holds one whole request: a terminated header
// block plus any declared Content-Length worth of body. It does not
// validate; Parse owns that.
func complete(buf []byte) error {
	rest := string(buf)
	_, rest = cutLine(rest)

	length := -1
	for {
		if rest == "" {
			return errNeedMoreData
		}
		var line string
		line, rest = cutLine(rest)
		if line == "" {
			break
		}
		if length >= 0 {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || name != headerContentLength {
			continue
		}
		n, err := strconv.Atoi(strings.TrimLeftFunc(value, unicode.IsSpace))
		if err != nil || n < 0 {
			// The declaration can never become valid with more bytes; hand
			// the buffer to Parse now and let it reject.
			return nil
		}
		length = n
	}

	if length > 0 && utf8.RuneCountInString(rest) < length {
		return errNeedMoreData
	}
	return nil
}
