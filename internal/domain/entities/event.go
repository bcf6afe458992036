package entities

// EventLevel is the severity of an Event.
type EventLevel string

const (
	EventDebug EventLevel = "debug"
	EventInfo  EventLevel = "info"
	EventWarn  EventLevel = "warn"
	EventError EventLevel = "error"
)

// Event is a notification emitted by the core for the outer layer to render.
type Event struct {
	Level   EventLevel
	Scope   string // usually a manifest or package name
	Message string
	Fields  map[string]any
}

// NewEvent builds an event without fields.
func NewEvent(level EventLevel, scope, message string) Event {
	return Event{Level: level, Scope: scope, Message: message}
}

// WithField returns a copy of the event carrying one more field.
func (e Event) WithField(key string, value any) Event {
	fields := make(map[string]any, len(e.Fields)+1)
	for k, v := range e.Fields {
		fields[k] = v
	}
	fields[key] = value
	e.Fields = fields
	return e
}
