package messenger

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrListenerPanic is returned, wrapped, by Emit when a listener panicked
// and the registry was built WithPanicHandler.
var ErrListenerPanic = errors.New("listener panicked")

// ListenerError reports the listener that stopped an emission.
type ListenerError struct {
	Type     EventType
	Listener *Listener
	err      error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("messenger: listener for %q failed: %s", e.Type, e.err)
}

// Cause returns the error returned by the listener.
func (e *ListenerError) Cause() error { return e.err }

func (e *ListenerError) Unwrap() error { return e.err }

func newListenerError(typ EventType, l *Listener, err error) *ListenerError {
	return &ListenerError{Type: typ, Listener: l, err: err}
}

func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return errors.Wrap(ErrListenerPanic, err.Error())
	}
	return errors.Wrapf(ErrListenerPanic, "%v", recovered)
}
