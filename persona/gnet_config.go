package persona

import (
	"os"
	"syscall"
	"time"

	gnet "github.com/panjf2000/gnet/v2"
	"go.uber.org/zap"
)

const (
	defaultMaxBufferBytes  = 1 << 20
	defaultShutdownTimeout = 5 * time.Second
	defaultServerHeader    = "Persona/0.1"
)

type serverConfig struct {
	maxBufferBytes  int
	shutdownSignals []os.Signal
	shutdownTimeout time.Duration
	serverHeader    string
	logger          *zap.Logger
	opts            []gnet.Option
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		maxBufferBytes:  defaultMaxBufferBytes,
		shutdownSignals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		shutdownTimeout: defaultShutdownTimeout,
		serverHeader:    defaultServerHeader,
		logger:          zap.NewNop(),
	}
}

// Option configures a Server.
type Option func(*serverConfig)

// WithMaxBufferBytes caps how many bytes a connection may accumulate while
// waiting for a complete request before it is dropped.
func WithMaxBufferBytes(n int) Option {
	return func(cfg *serverConfig) {
		if n > 0 {
			cfg.maxBufferBytes = n
		}
	}
}

// WithShutdownSignals overrides the OS signals that trigger graceful shutdown.
func WithShutdownSignals(signals ...os.Signal) Option {
	return func(cfg *serverConfig) {
		if len(signals) > 0 {
			cfg.shutdownSignals = signals
		}
	}
}

// WithShutdownTimeout overrides the graceful shutdown timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *serverConfig) {
		if d > 0 {
			cfg.shutdownTimeout = d
		}
	}
}

// WithServerHeader overrides the Server response header used when the
// server falls back to DefaultHandler.
func WithServerHeader(header string) Option {
	return func(cfg *serverConfig) {
		if header != "" {
			cfg.serverHeader = header
		}
	}
}

// WithLogger sets the structured logger. It is also bridged to the gnet
// engine's internal logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *serverConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithGNetOption forwards a gnet.Option to the underlying event engine.
func WithGNetOption(opt gnet.Option) Option {
	return func(cfg *serverConfig) {
		cfg.opts = append(cfg.opts, opt)
	}
}
