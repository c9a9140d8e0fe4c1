package messenger

import (
	"slices"
	"sync"

	log "github.com/sirupsen/logrus"
)

var messengerLogger = log.WithFields(log.Fields{
	"_module": "messenger",
})

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Registry maps event types to their ordered listeners.
// A Registry is safe for concurrent use. Callbacks run without any lock
// held, so they may register, remove, or emit on the same Registry.
type Registry struct {
	listeners    map[EventType][]*Listener
	mu           sync.RWMutex
	name         string
	logger       log.FieldLogger
	panicHandler PanicHandler
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		listeners: make(map[EventType][]*Listener),
		logger:    messengerLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.name != "" {
		r.logger = r.logger.WithField("registry", r.name)
	}
	return r
}

// Default returns the shared Registry used by the package-level functions,
// creating it with the options given to Configure on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultOptMu.Lock()
		opts := defaultOptions
		defaultOptMu.Unlock()
		defaultRegistry = New(opts...)
	})
	return defaultRegistry
}

func (r *Registry) String() string {
	if r.name == "" {
		return "messenger.Registry"
	}
	return "messenger.Registry(" + r.name + ")"
}

// AddListener registers callback for typ and returns its handle.
// If once is true the listener is removed after its first successful call.
// Registering the same callback twice produces two independent listeners.
//
// After the listener is stored, a NewListenerEvent is emitted with the
// registry as sender. An error from one of its listeners is returned
// together with the handle; the registration itself stays in place.
func (r *Registry) AddListener(typ EventType, once bool, callback Callback) (*Listener, error) {
	l := newListener(r, typ, callback, once)

	r.mu.Lock()
	r.listeners[typ] = append(r.listeners[typ], l)
	r.mu.Unlock()

	r.logger.WithFields(log.Fields{
		"_block": "add-listener",
		"type":   typ,
		"once":   once,
	}).Debug("listener added")

	err := r.Emit(NewListenerEvent, r,
		TypeKey.Field(typ),
		OnceKey.Field(once),
		CallbackKey.Field(callback),
		ListenerKey.Field(l),
	)
	return l, err
}

// On registers callback for every emission of typ.
func (r *Registry) On(typ EventType, callback Callback) (*Listener, error) {
	return r.AddListener(typ, false, callback)
}

// Once registers callback for the next emission of typ only.
func (r *Registry) Once(typ EventType, callback Callback) (*Listener, error) {
	return r.AddListener(typ, true, callback)
}

// Remove unregisters l from typ. Unknown types and listeners are ignored.
// The remaining listeners keep their order.
func (r *Registry) Remove(typ EventType, l *Listener) {
	if l == nil {
		return
	}

	r.mu.Lock()
	listeners, exists := r.listeners[typ]
	if !exists {
		r.mu.Unlock()
		return
	}
	i := slices.Index(listeners, l)
	if i < 0 {
		r.mu.Unlock()
		return
	}
	// Emit iterates a copy, so deleting in place is safe.
	listeners = slices.Delete(listeners, i, i+1)
	if len(listeners) == 0 {
		delete(r.listeners, typ)
	} else {
		r.listeners[typ] = listeners
	}
	r.mu.Unlock()

	r.logger.WithFields(log.Fields{
		"_block": "remove",
		"type":   typ,
	}).Debug("listener removed")
}

// RemoveListener unregisters l from the event type it was registered for.
func (r *Registry) RemoveListener(l *Listener) {
	if l == nil {
		return
	}
	r.Remove(l.typ, l)
}

// RemoveAll unregisters every listener of the given types.
// With no types it clears the whole registry.
func (r *Registry) RemoveAll(types ...EventType) {
	removed := 0

	r.mu.Lock()
	if len(types) == 0 {
		for _, listeners := range r.listeners {
			removed += len(listeners)
		}
		clear(r.listeners)
	} else {
		for _, typ := range types {
			removed += len(r.listeners[typ])
			delete(r.listeners, typ)
		}
	}
	r.mu.Unlock()

	if removed == 0 {
		return
	}
	var scope any = types
	if len(types) == 0 {
		scope = "all"
	}
	r.logger.WithFields(log.Fields{
		"_block":  "remove-all",
		"types":   scope,
		"removed": removed,
	}).Debug("listeners removed")
}

// Emit calls every listener registered for typ, in registration order,
// with an Event carrying sender and fields. It does nothing if typ has no
// listeners.
//
// The listeners are read once when Emit starts. Listeners added during the
// emission are not called by it; listeners removed during it do not disturb
// the rest of the pass.
//
// The first listener error stops the emission and is returned as a
// *ListenerError. A panicking listener is not recovered unless the registry
// has a PanicHandler.
func (r *Registry) Emit(typ EventType, sender any, fields ...Field) error {
	r.mu.RLock()
	current, exists := r.listeners[typ]
	if !exists {
		r.mu.RUnlock()
		return nil
	}
	snapshot := make([]*Listener, len(current))
	copy(snapshot, current)
	r.mu.RUnlock()

	e := newEvent(typ, sender, fields...)
	for _, l := range snapshot {
		if err := r.fire(l, e); err != nil {
			r.logger.WithFields(log.Fields{
				"_block": "emit",
				"type":   typ,
				"error":  err,
			}).Debug("emission stopped by listener")
			return newListenerError(typ, l, err)
		}
	}
	return nil
}

func (r *Registry) fire(l *Listener, e *Event) (err error) {
	if r.panicHandler != nil {
		defer func() {
			if recovered := recover(); recovered != nil {
				r.panicHandler(e.Type, recovered)
				err = panicError(recovered)
			}
		}()
	}
	return l.fire(e)
}

// Listeners returns a copy of the listeners registered for typ, in order.
func (r *Registry) Listeners(typ EventType) []*Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.listeners[typ])
}

// Stats returns the number of listeners per event type.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		Types:          len(r.listeners),
		ListenerCounts: make(map[EventType]int, len(r.listeners)),
	}
	for typ, listeners := range r.listeners {
		stats.ListenerCounts[typ] = len(listeners)
	}
	return stats
}

// AddListener registers callback on the default Registry.
func AddListener(typ EventType, once bool, callback Callback) (*Listener, error) {
	return Default().AddListener(typ, once, callback)
}

// On registers callback on the default Registry.
func On(typ EventType, callback Callback) (*Listener, error) {
	return Default().On(typ, callback)
}

// Once registers a one-shot callback on the default Registry.
func Once(typ EventType, callback Callback) (*Listener, error) {
	return Default().Once(typ, callback)
}

// Emit emits on the default Registry.
func Emit(typ EventType, sender any, fields ...Field) error {
	return Default().Emit(typ, sender, fields...)
}

// Remove unregisters l from typ on the default Registry.
func Remove(typ EventType, l *Listener) {
	Default().Remove(typ, l)
}

// RemoveAll clears the given types, or everything, on the default Registry.
func RemoveAll(types ...EventType) {
	Default().RemoveAll(types...)
}
