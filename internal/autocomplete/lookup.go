package autocomplete

import (
	"context"
	"errors"
	"sync"
)

// ErrNotSettled is returned by Deferred.Result before Resolve or Reject was called
var ErrNotSettled = errors.New("deferred not settled")

// LookupFunc produces candidate items for a non-empty query
type LookupFunc func(query string) Result

// Result is what a lookup returns: either items available now or a future
type Result struct {
	items  []Item
	future Future
}

// Ready wraps items that are available immediately
func Ready(items []Item) Result {
	if items == nil {
		items = []Item{}
	}
	return Result{items: items}
}

// Async wraps a future that settles later
func Async(f Future) Result {
	return Result{future: f}
}

// IsAsync reports whether the result still has to be awaited
func (r Result) IsAsync() bool {
	return r.future != nil
}

// Items returns the synchronous items (nil for async results)
func (r Result) Items() []Item {
	return r.items
}

// Future is a lookup result that settles later with items or an error
type Future interface {
	Await(ctx context.Context) ([]Item, error)
}

// Deferred is a Future settled explicitly by Resolve or Reject. The first
// settle wins; later calls are ignored.
type Deferred struct {
	once  sync.Once
	done  chan struct{}
	items []Item
	err   error
}

// NewDeferred creates an unsettled Deferred
func NewDeferred() *Deferred {
	return &Deferred{done: make(chan struct{})}
}

// Resolve settles the deferred with items
func (d *Deferred) Resolve(items []Item) {
	d.once.Do(func() {
		if items == nil {
			items = []Item{}
		}
		d.items = items
		close(d.done)
	})
}

// Reject settles the deferred with an error
func (d *Deferred) Reject(err error) {
	d.once.Do(func() {
		d.err = err
		close(d.done)
	})
}

// Done is closed once the deferred is settled
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Result returns the settled value without blocking
func (d *Deferred) Result() ([]Item, error) {
	select {
	case <-d.done:
		return d.items, d.err
	default:
		return nil, ErrNotSettled
	}
}

// Await blocks until the deferred settles or ctx is done
func (d *Deferred) Await(ctx context.Context) ([]Item, error) {
	select {
	case <-d.done:
		return d.items, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Pending is an in-flight asynchronous lookup tagged with the generation of
// the query that started it
type Pending struct {
	ID     uint64
	Query  string
	Future Future
}

// Outcome is the settled result of a Pending lookup
type Outcome struct {
	ID    uint64
	Query string
	Items []Item
	Err   error
}

// Wait awaits the future and packages the result for OnLookupResult
func (p *Pending) Wait(ctx context.Context) Outcome {
	items, err := p.Future.Await(ctx)
	return Outcome{ID: p.ID, Query: p.Query, Items: items, Err: err}
}
