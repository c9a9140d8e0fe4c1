package messenger

// Emitter is anything events can be emitted on. *Registry implements it.
type Emitter interface {
	Emit(typ EventType, sender any, fields ...Field) error
}

// Registrar is anything listeners can be registered on. *Registry implements it.
type Registrar interface {
	AddListener(typ EventType, once bool, callback Callback) (*Listener, error)
	On(typ EventType, callback Callback) (*Listener, error)
	Once(typ EventType, callback Callback) (*Listener, error)
}

var (
	_ Emitter   = (*Registry)(nil)
	_ Registrar = (*Registry)(nil)
)

// Emittable gives a host type an Emit method that names the host as sender.
// Embed it and build it with NewEmittable:
//
//	type Uploader struct {
//	    messenger.Emittable
//	}
//
//	u := &Uploader{}
//	u.Emittable = messenger.NewEmittable(reg, u)
//	u.Emit("upload.done", path.Field("/tmp/a"))
type Emittable struct {
	emitter Emitter
	host    any
}

// NewEmittable binds host to emitter.
func NewEmittable(emitter Emitter, host any) Emittable {
	return Emittable{emitter: emitter, host: host}
}

// Emit emits typ with the host as sender.
func (e Emittable) Emit(typ EventType, fields ...Field) error {
	return e.emitter.Emit(typ, e.host, fields...)
}

// Listenable gives a host type AddListener, On and Once methods that
// register on a shared Registrar.
type Listenable struct {
	registrar Registrar
}

// NewListenable binds to registrar.
func NewListenable(registrar Registrar) Listenable {
	return Listenable{registrar: registrar}
}

// AddListener forwards to the underlying Registrar.
func (l Listenable) AddListener(typ EventType, once bool, callback Callback) (*Listener, error) {
	return l.registrar.AddListener(typ, once, callback)
}

// On forwards to the underlying Registrar.
func (l Listenable) On(typ EventType, callback Callback) (*Listener, error) {
	return l.registrar.On(typ, callback)
}

// Once forwards to the underlying Registrar.
func (l Listenable) Once(typ EventType, callback Callback) (*Listener, error) {
	return l.registrar.Once(typ, callback)
}
