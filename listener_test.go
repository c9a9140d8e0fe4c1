package messenger

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerDefaultsToNotOnce(t *testing.T) {
	r := New()
	l, _ := r.On("test", nil)

	assert.False(t, l.IsOnce())
	assert.Equal(t, EventType("test"), l.Type())
}

func TestListenerFireCallsCallback(t *testing.T) {
	called := false
	l := newListener(nil, "test", func(_ *Event) error {
		called = true
		return nil
	}, false)

	require.NoError(t, l.fire(newEvent("test", nil)))
	assert.True(t, called)
}

func TestListenerFireNilCallback(t *testing.T) {
	l := newListener(nil, "test", nil, false)

	assert.NoError(t, l.fire(newEvent("test", nil)))
}

func TestListenerFireReturnsCallbackError(t *testing.T) {
	boom := errors.New("boom")
	l := newListener(nil, "test", func(_ *Event) error { return boom }, false)

	assert.Same(t, boom, l.fire(newEvent("test", nil)))
}

func TestListenerOnceRemovesItselfAfterFiring(t *testing.T) {
	r := New()
	l, _ := r.Once("test", func(_ *Event) error { return nil })
	require.Equal(t, []*Listener{l}, r.Listeners("test"))

	require.NoError(t, l.fire(newEvent("test", nil)))

	assert.Empty(t, r.Listeners("test"))
	assert.NotContains(t, r.Stats().ListenerCounts, EventType("test"))
}

func TestListenerOnceNilCallbackStillRemoved(t *testing.T) {
	r := New()
	r.Once("test", nil)

	require.NoError(t, r.Emit("test", nil))

	assert.Empty(t, r.Listeners("test"))
}

func TestListenerOnceKeptWhenCallbackFails(t *testing.T) {
	r := New()
	calls := 0
	fail := true
	r.Once("test", func(_ *Event) error {
		calls++
		if fail {
			return errors.New("not yet")
		}
		return nil
	})

	require.Error(t, r.Emit("test", nil))
	assert.Len(t, r.Listeners("test"), 1)

	fail = false
	require.NoError(t, r.Emit("test", nil))
	require.NoError(t, r.Emit("test", nil))

	assert.Equal(t, 2, calls)
	assert.Empty(t, r.Listeners("test"))
}

func TestListenerOnceKeptWhenCallbackPanics(t *testing.T) {
	r := New()
	calls := 0
	r.Once("test", func(_ *Event) error {
		calls++
		if calls == 1 {
			panic("first call")
		}
		return nil
	})

	assert.Panics(t, func() { _ = r.Emit("test", nil) })
	assert.Len(t, r.Listeners("test"), 1)

	require.NoError(t, r.Emit("test", nil))
	assert.Equal(t, 2, calls)
	assert.Empty(t, r.Listeners("test"))
}

func TestListenerClose(t *testing.T) {
	r := New()
	count := 0
	l, _ := r.On("test", func(_ *Event) error {
		count++
		return nil
	})

	require.NoError(t, r.Emit("test", nil))
	l.Close()
	require.NoError(t, r.Emit("test", nil))

	assert.Equal(t, 1, count)
}

func TestListenerCloseIdempotent(t *testing.T) {
	r := New()
	l, _ := r.On("test", func(_ *Event) error { return nil })
	other, _ := r.On("test", func(_ *Event) error { return nil })

	l.Close()
	l.Close()
	l.Close()

	assert.Equal(t, []*Listener{other}, r.Listeners("test"))
}

func TestListenerCloseWithoutRegistry(t *testing.T) {
	l := newListener(nil, "test", nil, true)

	assert.NotPanics(t, l.Close)
	assert.NoError(t, l.fire(newEvent("test", nil)))
}
