package autocomplete

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"ionautocomplete/internal/keypath"
)

// ErrorSink receives lookup failures. It is called once per failed lookup.
type ErrorSink func(error)

// Observer is notified about state changes the host may want to mirror
type Observer interface {
	OverlayChanged(open bool)
	SelectionChanged(value any)
	LookupFailed(query string, err error)
}

// Option configures a Controller
type Option func(*Controller)

// WithErrorSink sets the channel lookup rejections are forwarded to
func WithErrorSink(sink ErrorSink) Option {
	return func(c *Controller) { c.onError = sink }
}

// WithLogger sets the logger used for diagnostics
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithObserver registers an observer for overlay, selection and failure notifications
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithSelectedItems seeds the full items behind a prepopulated multi-select
// model. Model entries whose projected value matches a seeded item display
// through that item.
func WithSelectedItems(items []Item) Option {
	return func(c *Controller) {
		c.seed = append([]Item(nil), items...)
	}
}

// Controller owns the overlay state, the query, the candidate items and the
// selection of one autocomplete field. It is not safe for concurrent use; the
// host calls it from its event loop.
type Controller struct {
	cfg      FieldConfig
	binding  Binding
	lookup   LookupFunc
	onError  ErrorSink
	observer Observer
	log      *zap.Logger
	inert    bool

	overlay    Overlay
	query      string
	items      []Item
	generation uint64
	settled    uint64

	display  string
	values   []any  // multi-select committed values, in selection order
	selected []Item // multi-select full items, parallel to values
	seed     []Item
}

// New creates a controller bound to the host's model. A nil binding leaves the
// controller inert: it exposes no overlay and ignores every operation.
func New(cfg FieldConfig, binding Binding, lookup LookupFunc, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg.WithDefaults(),
		binding: binding,
		lookup:  lookup,
		log:     zap.NewNop(),
		items:   []Item{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if binding == nil {
		c.inert = true
		c.log.Debug("no model bound, autocomplete stays inert")
		return c
	}

	c.loadModel(c.seed)
	return c
}

// Inert reports whether the controller was created without a model binding
func (c *Controller) Inert() bool {
	return c.inert
}

// Config returns the field configuration with defaults applied
func (c *Controller) Config() FieldConfig {
	return c.cfg
}

// Open shows the overlay
func (c *Controller) Open() {
	if c.inert || c.overlay == Open {
		return
	}
	c.overlay = Open
	c.log.Debug("overlay opened")
	if c.observer != nil {
		c.observer.OverlayChanged(true)
	}
}

// Close hides the overlay, clears the query and the candidate items, and
// invalidates any lookup still in flight
func (c *Controller) Close() {
	if c.inert {
		return
	}
	wasOpen := c.overlay == Open
	c.overlay = Closed
	c.query = ""
	c.items = []Item{}
	c.generation++

	if wasOpen {
		c.log.Debug("overlay closed")
		if c.observer != nil {
			c.observer.OverlayChanged(false)
		}
	}
}

// Cancel is the cancel button: it closes the overlay without committing
func (c *Controller) Cancel() {
	c.Close()
}

// SetQuery updates the search text. An empty query clears the candidates
// without calling the lookup. A synchronous lookup result is applied
// immediately and nil is returned; an asynchronous one is returned as a
// Pending the host awaits and feeds back through OnLookupResult.
func (c *Controller) SetQuery(text string) *Pending {
	if c.inert {
		return nil
	}

	c.query = text
	c.generation++

	if text == "" || c.lookup == nil {
		c.items = []Item{}
		return nil
	}

	res := c.lookup(text)
	if !res.IsAsync() {
		c.items = res.Items()
		c.settled = c.generation
		c.log.Debug("lookup completed", zap.String("query", text), zap.Int("items", len(c.items)))
		return nil
	}

	c.log.Debug("lookup pending", zap.String("query", text), zap.Uint64("id", c.generation))
	return &Pending{ID: c.generation, Query: text, Future: res.future}
}

// OnLookupResult applies a settled asynchronous lookup. Outcomes from a
// superseded query are discarded. A rejection is forwarded to the error sink
// and leaves the candidates unchanged. It reports whether the outcome was
// applied.
func (c *Controller) OnLookupResult(o Outcome) bool {
	if c.inert {
		return false
	}
	if o.ID != c.generation || o.ID == c.settled {
		c.log.Debug("discarding stale lookup result",
			zap.String("query", o.Query),
			zap.Uint64("id", o.ID),
			zap.Uint64("current", c.generation))
		return false
	}
	if errors.Is(o.Err, context.Canceled) {
		return false
	}

	c.settled = o.ID
	if o.Err != nil {
		c.reportError(o.Query, o.Err)
		return true
	}

	c.items = o.Items
	if c.items == nil {
		c.items = []Item{}
	}
	c.log.Debug("lookup resolved", zap.String("query", o.Query), zap.Int("items", len(c.items)))
	return true
}

func (c *Controller) reportError(query string, err error) {
	c.log.Warn("lookup failed", zap.String("query", query), zap.Error(err))
	if c.onError != nil {
		c.onError(err)
	}
	if c.observer != nil {
		c.observer.LookupFailed(query, err)
	}
}

// SelectItem commits an item. In single-select mode the projected value
// replaces the model and the overlay closes; in multi-select mode it is
// appended and the overlay stays open.
func (c *Controller) SelectItem(item Item) {
	if c.inert {
		return
	}

	value := c.valueOf(item)
	if !c.cfg.MultipleSelect {
		c.binding.SetValue(value)
		c.display = c.ItemLabel(item)
		c.notifySelection(value)
		c.Close()
		return
	}

	c.values = append(c.values, value)
	c.selected = append(c.selected, item)
	c.commitMulti()
}

// DeselectItem removes the first selected entry equal to the item's projected
// value. Only meaningful in multi-select mode.
func (c *Controller) DeselectItem(item Item) bool {
	if c.inert || !c.cfg.MultipleSelect {
		return false
	}
	value := c.valueOf(item)
	for i, v := range c.values {
		if reflect.DeepEqual(v, value) {
			return c.DeselectAt(i)
		}
	}
	return false
}

// DeselectAt removes the selected entry at index i
func (c *Controller) DeselectAt(i int) bool {
	if c.inert || !c.cfg.MultipleSelect || i < 0 || i >= len(c.values) {
		return false
	}
	c.values = append(c.values[:i:i], c.values[i+1:]...)
	c.selected = append(c.selected[:i:i], c.selected[i+1:]...)
	c.commitMulti()
	return true
}

func (c *Controller) commitMulti() {
	model := c.modelSlice()
	c.binding.SetValue(model)
	c.display = c.joinLabels()
	c.notifySelection(model)
}

func (c *Controller) notifySelection(value any) {
	c.log.Debug("selection committed", zap.Any("value", value))
	if c.observer != nil {
		c.observer.SelectionChanged(value)
	}
}

// RefreshFromModel re-reads the binding after the host changed it
func (c *Controller) RefreshFromModel() {
	if c.inert {
		return
	}
	known := make([]Item, 0, len(c.selected)+len(c.seed))
	known = append(known, c.selected...)
	known = append(known, c.seed...)
	c.loadModel(known)
}

func (c *Controller) loadModel(known []Item) {
	v := c.binding.Value()
	if !c.cfg.MultipleSelect {
		c.display = Format(c.GetItemValue(v, c.cfg.ItemViewValueKey))
		return
	}

	c.values = toSlice(v)
	c.selected = c.reconcile(c.values, known)
	c.display = c.joinLabels()
}

// reconcile pairs each model value with the first unused known item that
// projects to it, falling back to the raw value
func (c *Controller) reconcile(values []any, known []Item) []Item {
	out := make([]Item, 0, len(values))
	used := make([]bool, len(known))
	for _, v := range values {
		item := Item(v)
		for i, k := range known {
			if !used[i] && reflect.DeepEqual(c.valueOf(k), v) {
				item = k
				used[i] = true
				break
			}
		}
		out = append(out, item)
	}
	return out
}

// GetItemValue projects item through a dotted key path. An empty path returns
// the item; an unresolved path returns nil.
func (c *Controller) GetItemValue(item Item, keyPath string) any {
	return keypath.Get(item, keyPath)
}

func (c *Controller) valueOf(item Item) any {
	return c.GetItemValue(item, c.cfg.ItemValueKey)
}

// ItemLabel is the display text of an item in the candidate and selected lists
func (c *Controller) ItemLabel(item Item) string {
	return Format(c.GetItemValue(item, c.cfg.ItemViewValueKey))
}

func (c *Controller) joinLabels() string {
	labels := make([]string, 0, len(c.selected))
	for _, item := range c.selected {
		labels = append(labels, c.ItemLabel(item))
	}
	return strings.Join(labels, ", ")
}

func (c *Controller) modelSlice() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// State returns a snapshot of the overlay. ok is false for an inert controller.
func (c *Controller) State() (state SearchState, ok bool) {
	if c.inert {
		return SearchState{}, false
	}
	return SearchState{
		OverlayVisible: c.overlay == Open,
		Query:          c.query,
		Items:          c.Items(),
	}, true
}

// Overlay returns the overlay state
func (c *Controller) Overlay() Overlay {
	return c.overlay
}

// IsOpen reports whether the overlay is visible
func (c *Controller) IsOpen() bool {
	return c.overlay == Open
}

// Query returns the current search text
func (c *Controller) Query() string {
	return c.query
}

// Items returns a copy of the candidate items
func (c *Controller) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Generation returns the id of the most recent query
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Selection returns the bound model value. In multi-select mode it is always
// a slice.
func (c *Controller) Selection() any {
	if c.inert {
		return nil
	}
	if c.cfg.MultipleSelect {
		return c.modelSlice()
	}
	return c.binding.Value()
}

// SelectedItems returns the full items behind a multi-select model
func (c *Controller) SelectedItems() []Item {
	out := make([]Item, len(c.selected))
	copy(out, c.selected)
	return out
}

// DisplayText is the text of the read-only field
func (c *Controller) DisplayText() string {
	return c.display
}

// Format renders a projected value as display text. nil renders empty.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// toSlice interprets a multi-select model value as a sequence
func toSlice(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		out := make([]any, len(t))
		copy(out, t)
		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}
