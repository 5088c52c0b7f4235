package signal

import (
	"math"
	"reflect"
)

// Selector extracts a derived value from store state.
// The wrapper exists because Go functions are not comparable: the cache
// keys derivations by pointer identity of the Selector, so a selector
// must be created once and reused for cache hits.
type Selector struct {
	fn func(state any) any
}

// NewSelector wraps a selection function in an identity-carrying Selector.
func NewSelector(fn func(state any) any) *Selector {
	if fn == nil {
		return Identity
	}
	return &Selector{fn: fn}
}

// Select applies the selector to the given state.
func (s *Selector) Select(state any) any {
	return s.fn(state)
}

// Identity is the default selector: it returns the state unchanged.
var Identity = &Selector{fn: func(state any) any { return state }}

// Equality decides whether two selected values are the same for
// re-render purposes. Like Selector, it carries identity for caching.
type Equality struct {
	fn func(a, b any) bool
}

// NewEquality wraps an equality predicate in an identity-carrying Equality.
func NewEquality(fn func(a, b any) bool) *Equality {
	if fn == nil {
		return Strict
	}
	return &Equality{fn: fn}
}

// Equal reports whether a and b are considered the same.
func (e *Equality) Equal(a, b any) bool {
	return e.fn(a, b)
}

// Strict is the default equality: SameValue semantics, not deep equality.
var Strict = &Equality{fn: SameValue}

// SameValue reports exact sameness of two values: identical references
// for slices, maps, channels and functions, bitwise equality for
// comparable values, and NaN equal to NaN. It never reports two
// distinct slice or map allocations as equal, no matter their contents,
// and it never panics: values Go cannot compare (including comparable
// struct types whose interface fields hold uncomparable contents) are
// never the same.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Float32, reflect.Float64:
		fa := reflect.ValueOf(a).Float()
		fb := reflect.ValueOf(b).Float()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb && math.Signbit(fa) == math.Signbit(fb)
	case reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	default:
		// Comparability must be checked per value, not per type: an
		// interface field of a comparable struct type can hold a slice,
		// and == would panic on it.
		if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
			return false
		}
		return a == b
	}
}
