// Package messenger provides a small in-process publish/subscribe registry.
//
// A Registry maps event types to ordered lists of listeners. Listeners are
// registered with On or Once, removed through the handle they return, and
// invoked synchronously, in registration order, by Emit.
//
// Quick example:
//
//	reg := messenger.New()
//	reason := messenger.NewStringKey("reason")
//
//	reg.On("alert", func(e *messenger.Event) error {
//	    r, _ := reason.From(e)
//	    fmt.Println("alert:", r)
//	    return nil
//	})
//
//	_ = reg.Emit("alert", nil, reason.Field("disk full"))
//
// Emission works on a snapshot of the listeners taken when Emit starts, so
// listeners may register, remove, or emit from inside a callback.
package messenger

// EventType identifies a category of events.
type EventType string

// NewListenerEvent is emitted by a Registry every time a listener is added.
// The event's sender is the Registry and it carries TypeKey, OnceKey,
// CallbackKey and ListenerKey fields.
const NewListenerEvent EventType = "new_listener"

// Callback handles an emitted Event.
// A non-nil error stops the current emission and is returned from Emit.
// Events must not be modified by listeners.
type Callback func(e *Event) error

// Key represents a typed semantic identifier for a field.
type Key interface {
	// Name returns the semantic identifier for this key.
	Name() string

	// Variant returns the type constraint for this key.
	Variant() Variant
}

// Variant is a discriminator for the Field implementation type.
type Variant string

const (
	VariantString  Variant = "string"
	VariantInt     Variant = "int"
	VariantFloat64 Variant = "float64"
	VariantBool    Variant = "bool"
	VariantError   Variant = "error"
	VariantMap     Variant = "map[string]any"
	VariantAny     Variant = "any"

	VariantEventType Variant = "messenger.EventType"
	VariantCallback  Variant = "messenger.Callback"
	VariantListener  Variant = "*messenger.Listener"
)

// Field is a typed value attached to an Event.
// Use type assertions, or GenericKey.From, to get at the typed value.
type Field interface {
	Variant() Variant
	Key() Key
	Value() any
}

// GenericField is the Field implementation used by every GenericKey.
type GenericField[T any] struct {
	key     Key
	value   T
	variant Variant
}

// Variant returns the discriminator for this field's type.
func (f GenericField[T]) Variant() Variant { return f.variant }

// Key returns the semantic identifier for this field.
func (f GenericField[T]) Key() Key { return f.key }

// Value returns the underlying value as any.
func (f GenericField[T]) Value() any { return f.value }

// Get returns the typed value.
func (f GenericField[T]) Get() T { return f.value }

// Stats is a point-in-time view of a Registry.
type Stats struct {
	// Types is the number of event types with at least one listener.
	Types int

	// ListenerCounts maps each event type to its number of listeners.
	ListenerCounts map[EventType]int
}
