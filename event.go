package messenger

import "time"

// Event is a single emission of an event type.
type Event struct {
	// Type is the event type being emitted.
	Type EventType

	// Sender identifies who emitted the event. It may be nil.
	Sender any

	// Timestamp records when Emit was called.
	Timestamp time.Time

	// fields holds the payload keyed by Key.Name().
	fields map[string]Field
}

func newEvent(typ EventType, sender any, fields ...Field) *Event {
	e := &Event{
		Type:      typ,
		Sender:    sender,
		Timestamp: time.Now(),
		fields:    make(map[string]Field, len(fields)),
	}
	// Later fields win on duplicate names.
	for _, field := range fields {
		if field == nil {
			continue
		}
		e.fields[field.Key().Name()] = field
	}
	return e
}

// Get retrieves a field by key, returning nil if not found.
func (e *Event) Get(key Key) Field {
	return e.fields[key.Name()]
}

// Fields returns all fields as a slice, in no particular order.
// The slice is a copy; modifying it does not affect the event.
func (e *Event) Fields() []Field {
	result := make([]Field, 0, len(e.fields))
	for _, field := range e.fields {
		result = append(result, field)
	}
	return result
}

// Len returns the number of fields carried by the event.
func (e *Event) Len() int {
	return len(e.fields)
}
