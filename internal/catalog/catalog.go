package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"go.uber.org/zap"

	"ionautocomplete/internal/autocomplete"
	"ionautocomplete/internal/keypath"
)

// ErrLookupFailed is the rejection produced for queries matching the failure pattern
var ErrLookupFailed = errors.New("lookup failed")

var schemeOnce sync.Once

// Catalog is an ordered, read-only set of items searchable by one key path
type Catalog struct {
	items     []autocomplete.Item
	searchKey string
}

// New creates a catalog. searchKey selects the text that queries match
// against; empty means the item itself.
func New(items []autocomplete.Item, searchKey string) *Catalog {
	schemeOnce.Do(func() { algo.Init("default") })

	return &Catalog{
		items:     append([]autocomplete.Item(nil), items...),
		searchKey: searchKey,
	}
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of all items in catalog order
func (c *Catalog) Items() []autocomplete.Item {
	return append([]autocomplete.Item{}, c.items...)
}

// Text returns the searchable text of an item
func (c *Catalog) Text(item autocomplete.Item) string {
	return autocomplete.Format(keypath.Get(item, c.searchKey))
}

const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

type scored struct {
	index int
	score int
}

// Search returns the items fuzzy-matching query, best score first. Items with
// equal scores keep catalog order. An empty query matches everything.
func (c *Catalog) Search(query string) []autocomplete.Item {
	if query == "" {
		return c.Items()
	}

	pattern := []rune(strings.ToLower(query))
	// One slab per search; lookups may run concurrently
	slab := util.MakeSlab(slab16Size, slab32Size)
	var matches []scored
	for i, item := range c.items {
		chars := util.ToChars([]byte(c.Text(item)))
		res, _ := algo.FuzzyMatchV2(false, false, true, &chars, pattern, false, slab)
		if res.Start < 0 || res.Score <= 0 {
			continue
		}
		matches = append(matches, scored{index: i, score: res.Score})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	out := make([]autocomplete.Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.items[m.index])
	}
	return out
}

// LookupOptions controls how the catalog answers lookups
type LookupOptions struct {
	Latency time.Duration // zero answers synchronously
	FailOn  string        // queries containing this substring reject
	Logger  *zap.Logger
}

// Lookup returns a lookup function backed by the catalog
func (c *Catalog) Lookup(opts LookupOptions) autocomplete.LookupFunc {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(query string) autocomplete.Result {
		fail := opts.FailOn != "" && strings.Contains(query, opts.FailOn)

		if opts.Latency <= 0 && !fail {
			return autocomplete.Ready(c.Search(query))
		}

		d := autocomplete.NewDeferred()
		settle := func() {
			if fail {
				log.Debug("rejecting lookup", zap.String("query", query))
				d.Reject(fmt.Errorf("%w: %q", ErrLookupFailed, query))
				return
			}
			items := c.Search(query)
			log.Debug("resolving lookup", zap.String("query", query), zap.Int("items", len(items)))
			d.Resolve(items)
		}

		if opts.Latency <= 0 {
			settle()
		} else {
			time.AfterFunc(opts.Latency, settle)
		}
		return autocomplete.Async(d)
	}
}
