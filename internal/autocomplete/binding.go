package autocomplete

// Binding is the host's model reference. The controller reads it at creation
// and on RefreshFromModel, and writes it on every commit.
type Binding interface {
	Value() any
	SetValue(v any)
}

// ValueBinding is a Binding holding the value in memory
type ValueBinding struct {
	value    any
	onChange func(any)
}

// NewBinding creates a binding with an initial value (nil means unset)
func NewBinding(initial any) *ValueBinding {
	return &ValueBinding{value: initial}
}

// OnChange registers a callback invoked after every SetValue
func (b *ValueBinding) OnChange(fn func(any)) {
	b.onChange = fn
}

// Value returns the current model value
func (b *ValueBinding) Value() any {
	return b.value
}

// SetValue replaces the model value
func (b *ValueBinding) SetValue(v any) {
	b.value = v
	if b.onChange != nil {
		b.onChange(v)
	}
}
