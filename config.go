package messenger

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	defaultOptions []Option
	defaultOptMu   sync.Mutex
)

// Option configures a Registry.
type Option func(*Registry)

// PanicHandler is called when a listener panics during Emit.
// Receives the event type being emitted and the recovered panic value.
type PanicHandler func(typ EventType, recovered any)

// Configure sets options for the default Registry.
// Must be called before any package-level function (On, Once, Emit, ...).
// Later calls have no effect once the default Registry exists.
func Configure(opts ...Option) {
	defaultOptMu.Lock()
	defaultOptions = opts
	defaultOptMu.Unlock()
}

// WithLogger sets the logger used for debug output.
// Defaults to the logrus standard logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithName labels the registry in log entries.
func WithName(name string) Option {
	return func(r *Registry) {
		r.name = name
	}
}

// WithPanicHandler makes Emit recover listener panics. The handler is
// called with the event type and the panic value, the emission stops, and
// Emit returns an error wrapping ErrListenerPanic.
// Without a handler, panics propagate to the caller of Emit.
func WithPanicHandler(handler PanicHandler) Option {
	return func(r *Registry) {
		r.panicHandler = handler
	}
}
