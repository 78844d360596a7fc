package keypath

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// ErrMalformed is returned by Parse for expressions that are not a dotted path
var ErrMalformed = errors.New("malformed key path")

// Path is a parsed dotted key-path expression
type Path struct {
	expr     string
	segments []string
}

// Parse splits a dotted expression like "key.value" or "items.0.name" into segments.
// The empty expression yields the identity path.
func Parse(expr string) (Path, error) {
	if expr == "" {
		return Path{}, nil
	}

	segments := strings.Split(expr, ".")
	for i, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("%w: empty segment %d in %q", ErrMalformed, i, expr)
		}
		if strings.IndexFunc(seg, unicode.IsSpace) >= 0 {
			return Path{}, fmt.Errorf("%w: whitespace in segment %q", ErrMalformed, seg)
		}
	}

	return Path{expr: expr, segments: segments}, nil
}

// String returns the original expression
func (p Path) String() string {
	return p.expr
}

// IsIdentity reports whether the path has no segments
func (p Path) IsIdentity() bool {
	return len(p.segments) == 0
}

// Segments returns a copy of the path segments
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Resolve walks v one segment at a time. The second result is false as soon as
// a segment cannot be applied.
func (p Path) Resolve(v any) (any, bool) {
	current := v
	for _, seg := range p.segments {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// step applies a single segment to v
func step(v any, seg string) (any, bool) {
	if v == nil {
		return nil, false
	}

	// Fast paths for the shapes decoded config and JSON produce
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[seg]
		return val, ok
	case map[string]string:
		val, ok := m[seg]
		return val, ok
	case []any:
		idx, ok := index(seg, len(m))
		if !ok {
			return nil, false
		}
		return m[idx], true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true

	case reflect.Struct:
		field, ok := structField(rv, seg)
		if !ok {
			return nil, false
		}
		return field.Interface(), true

	case reflect.Slice, reflect.Array:
		idx, ok := index(seg, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	}

	return nil, false
}

func index(seg string, length int) (int, bool) {
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

// structField finds an exported field by tag name first, then by field name ignoring case.
// Fields promoted from embedded structs are visible too.
func structField(rv reflect.Value, seg string) (reflect.Value, bool) {
	fields := reflect.VisibleFields(rv.Type())
	for _, f := range fields {
		if !f.IsExported() {
			continue
		}
		for _, tag := range []string{"json", "toml", "yaml"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" && name == seg {
				return fieldValue(rv, f)
			}
		}
	}
	for _, f := range fields {
		if f.IsExported() && strings.EqualFold(f.Name, seg) {
			return fieldValue(rv, f)
		}
	}
	return reflect.Value{}, false
}

// fieldValue reads f through any embedded pointers; a nil one means no value
func fieldValue(rv reflect.Value, f reflect.StructField) (reflect.Value, bool) {
	v, err := rv.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return v, true
}

var cache sync.Map // expr -> cachedPath

type cachedPath struct {
	path Path
	err  error
}

func parseCached(expr string) (Path, error) {
	if c, ok := cache.Load(expr); ok {
		cp := c.(cachedPath)
		return cp.path, cp.err
	}
	p, err := Parse(expr)
	cache.Store(expr, cachedPath{path: p, err: err})
	return p, err
}

// Lookup resolves expr against v and reports whether it resolved.
// A malformed expression never resolves.
func Lookup(v any, expr string) (any, bool) {
	p, err := parseCached(expr)
	if err != nil {
		return nil, false
	}
	return p.Resolve(v)
}

// Get resolves expr against v, returning nil when the path does not resolve.
// The empty expression returns v unchanged.
func Get(v any, expr string) any {
	val, _ := Lookup(v, expr)
	return val
}
