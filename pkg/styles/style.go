package styles

import (
	"fmt"
	"maps"
	"reflect"
)

// Style is a style descriptor: a mapping from style property name
// (camelCase, e.g. "backgroundColor") to value.
//
// Styles are treated as immutable once built. Every helper in this package
// returns a fresh map and never mutates its arguments.
type Style map[string]any

// unset is the type of Unset.
type unset struct{}

func (unset) String() string { return "unset" }

// Unset removes a property when merged by Collapse.
// Use it to drop a property set by an earlier layer (e.g. a fixed alignSelf).
var Unset any = unset{}

// Collapse shallow-merges styles left to right. Later keys overwrite earlier
// ones, non-overlapping keys from every layer are kept, nil layers are
// skipped, and a key whose winning value is Unset is removed.
func Collapse(layers ...Style) Style {
	out := make(Style)
	for _, layer := range layers {
		for k, v := range layer {
			if v == Unset {
				delete(out, k)
				continue
			}
			out[k] = v
		}
	}
	return out
}

// Merge returns s overlaid with others. It is Collapse with s as the base.
func (s Style) Merge(others ...Style) Style {
	return Collapse(append([]Style{s}, others...)...)
}

// Clone returns a shallow copy of s. A nil style clones to an empty one.
func (s Style) Clone() Style {
	if s == nil {
		return Style{}
	}
	return maps.Clone(s)
}

// Has reports whether the property is set.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// StringValue returns the value of a string property, or "" when unset.
func (s Style) StringValue(key string) string {
	switch v := s[key].(type) {
	case string:
		return v
	case Color:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Number returns the value of a numeric property and whether it was set
// to a number.
func (s Style) Number(key string) (float64, bool) {
	switch v := s[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Color returns the value of a color property, or "" when unset.
func (s Style) Color(key string) Color {
	return Color(s.StringValue(key))
}

// Equal reports whether two styles hold the same properties and values.
func Equal(a, b Style) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}
