package host

// Attribute is a single key/value pair attached to an emitted event.
type Attribute struct {
	Key   string
	Value string
}

// Event is the record emitted for every successfully executed message:
// a kind string plus an ordered list of attributes.
type Event struct {
	Type       string
	Attributes []Attribute
}

// NewAttribute returns a new event attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// NewEvent returns a new event with the given kind and attributes.
func NewEvent(eventType string, attrs ...Attribute) Event {
	return Event{Type: eventType, Attributes: attrs}
}

// EventManager collects events emitted during the processing of a
// single message.
type EventManager struct {
	events []Event
}

// NewEventManager returns an empty event manager.
func NewEventManager() *EventManager {
	return &EventManager{}
}

// EmitEvent appends an event to the manager.
func (em *EventManager) EmitEvent(event Event) {
	em.events = append(em.events, event)
}

// EmitEvents appends a batch of events to the manager.
func (em *EventManager) EmitEvents(events []Event) {
	em.events = append(em.events, events...)
}

// Events returns the events emitted so far, in emission order.
func (em *EventManager) Events() []Event {
	return em.events
}
