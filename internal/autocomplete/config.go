package autocomplete

// DefaultCancelLabel is shown on the cancel button when no label is configured
const DefaultCancelLabel = "Cancel"

// Item is an opaque value supplied by the lookup function. The controller only
// reads it through key-path projection.
type Item = any

// FieldConfig is the static configuration captured when the controller is created
type FieldConfig struct {
	Placeholder      string
	CancelLabel      string
	ItemViewValueKey string // key path used for display text; empty means the item itself
	ItemValueKey     string // key path used for the committed value; empty means the item itself
	MultipleSelect   bool
}

// WithDefaults returns a copy with unset display strings filled in
func (c FieldConfig) WithDefaults() FieldConfig {
	if c.CancelLabel == "" {
		c.CancelLabel = DefaultCancelLabel
	}
	return c
}

// Overlay is the visibility state of the search overlay
type Overlay int

const (
	Closed Overlay = iota
	Open
)

func (o Overlay) String() string {
	switch o {
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// SearchState is a snapshot of the overlay, the query and the candidate items
type SearchState struct {
	OverlayVisible bool
	Query          string
	Items          []Item
}
