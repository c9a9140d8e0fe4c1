package messenger

// GenericKey names a payload value of type T. Emitters attach values with
// Field and listeners read them back with From.
type GenericKey[T any] struct {
	name    string
	variant Variant
}

// NewKey creates a key for any type T. Use a namespaced variant for
// application types, e.g. "shop.Order":
//
//	orderKey := messenger.NewKey[Order]("order", "shop.Order")
//	reg.Emit("order.created", shop, orderKey.Field(order))
func NewKey[T any](name string, variant Variant) GenericKey[T] {
	return GenericKey[T]{name: name, variant: variant}
}

func (k GenericKey[T]) Name() string     { return k.name }
func (k GenericKey[T]) Variant() Variant { return k.variant }

// Field wraps value for an Emit call.
func (k GenericKey[T]) Field(value T) Field {
	return GenericField[T]{key: k, value: value, variant: k.variant}
}

// From reads the value for this key from e. It reports false when e has
// no field of that name or the field holds a different type.
func (k GenericKey[T]) From(e *Event) (T, bool) {
	gf, ok := e.Get(k).(GenericField[T])
	return gf.value, ok
}

type (
	StringKey  = GenericKey[string]
	IntKey     = GenericKey[int]
	Float64Key = GenericKey[float64]
	BoolKey    = GenericKey[bool]
	ErrorKey   = GenericKey[error]
	// MapKey carries loose option maps, e.g. {"arg": "yeah"}.
	MapKey = GenericKey[map[string]any]
	AnyKey = GenericKey[any]
)

func NewStringKey(name string) StringKey   { return NewKey[string](name, VariantString) }
func NewIntKey(name string) IntKey         { return NewKey[int](name, VariantInt) }
func NewFloat64Key(name string) Float64Key { return NewKey[float64](name, VariantFloat64) }
func NewBoolKey(name string) BoolKey       { return NewKey[bool](name, VariantBool) }
func NewErrorKey(name string) ErrorKey     { return NewKey[error](name, VariantError) }
func NewMapKey(name string) MapKey         { return NewKey[map[string]any](name, VariantMap) }
func NewAnyKey(name string) AnyKey         { return NewKey[any](name, VariantAny) }

// Fields of every NewListenerEvent.
var (
	TypeKey     = NewKey[EventType]("type", VariantEventType)
	OnceKey     = NewBoolKey("once")
	CallbackKey = NewKey[Callback]("callback", VariantCallback)
	ListenerKey = NewKey[*Listener]("listener", VariantListener)
)
