package glshader

import "log/slog"

// DefaultInfoLogCapacity is the size, in bytes and including the NUL
// terminator, of the buffer used to read compile logs.
const DefaultInfoLogCapacity = 1024

// Option configures a Shader during creation. The configuration carries over
// to the CompiledShader it turns into.
//
// Example:
//
//	sh, err := glshader.New(drv, glshader.Fragment,
//	    glshader.WithInfoLogCapacity(4096),
//	    glshader.WithLogger(logger))
type Option func(*options)

type options struct {
	logCapacity int
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		logCapacity: DefaultInfoLogCapacity,
	}
}

// WithInfoLogCapacity sets the capacity of the compile log buffer.
// Logs longer than n-1 bytes are truncated by the driver. Values below 2
// are ignored since the buffer must hold at least one byte and the terminator.
func WithInfoLogCapacity(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.logCapacity = n
		}
	}
}

// WithLogger sets a logger for this shader instead of the package logger.
// A nil logger selects the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
