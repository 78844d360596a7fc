package eventbus

import "ionautocomplete/internal/autocomplete"

// FieldObserver publishes a controller's notifications as domain events
type FieldObserver struct {
	bus   EventBus
	field string
}

var _ autocomplete.Observer = (*FieldObserver)(nil)

// NewFieldObserver creates an observer that tags events with the field name
func NewFieldObserver(bus EventBus, field string) *FieldObserver {
	return &FieldObserver{bus: bus, field: field}
}

func (o *FieldObserver) OverlayChanged(open bool) {
	if open {
		o.bus.Publish(OverlayOpenedEvent{Field: o.field})
		return
	}
	o.bus.Publish(OverlayClosedEvent{Field: o.field})
}

func (o *FieldObserver) SelectionChanged(value any) {
	o.bus.Publish(SelectionChangedEvent{Field: o.field, Value: value})
}

func (o *FieldObserver) LookupFailed(query string, err error) {
	o.bus.Publish(LookupFailedEvent{Field: o.field, Query: query, Err: err})
}
