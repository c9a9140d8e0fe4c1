package messenger

import "sync/atomic"

// Listener is a callback registered for one event type.
// It is returned by registration and used as the handle to remove it again.
type Listener struct {
	typ      EventType
	callback Callback
	once     bool
	registry *Registry

	// spent is claimed by the single invocation of a one-shot listener.
	spent atomic.Bool
}

func newListener(r *Registry, typ EventType, callback Callback, once bool) *Listener {
	return &Listener{
		typ:      typ,
		callback: callback,
		once:     once,
		registry: r,
	}
}

// Type returns the event type the listener is bound to.
func (l *Listener) Type() EventType { return l.typ }

// IsOnce reports whether the listener removes itself after firing.
func (l *Listener) IsOnce() bool { return l.once }

// Close removes this listener from its registry. Closing twice is a no-op.
func (l *Listener) Close() {
	if l.registry == nil {
		return
	}
	l.registry.Remove(l.typ, l)
}

// fire invokes the callback. A one-shot listener removes itself once the
// callback has returned without error; on error it stays registered.
// Errors and panics from the callback are not handled here.
func (l *Listener) fire(e *Event) error {
	if l.once && !l.spent.CompareAndSwap(false, true) {
		return nil
	}

	if l.callback != nil {
		ok := false
		defer func() {
			if !ok && l.once {
				l.spent.Store(false)
			}
		}()
		if err := l.callback(e); err != nil {
			return err
		}
		ok = true
	}

	if l.once && l.registry != nil {
		l.registry.Remove(l.typ, l)
	}
	return nil
}
