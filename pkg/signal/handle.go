package signal

import (
	"fmt"
	"reflect"
)

// Handle is a lazy reference to a derived value from a store.
//
// Get never recomputes the selection against the store; it returns the
// value most recently captured by the root's change detection (or the
// initial selection if no change has fired yet). Subscribe registers a
// callback fired exactly when the selected value changes per the
// equality function the handle was derived with.
//
// Field, Call and Map build child handles without evaluating anything.
// A child's Get re-derives lazily from its parent's Get; its Subscribe
// delegates unchanged to the root. Child handles are not cached:
// repeated chaining allocates a fresh handle each time, but every
// subscription still fans out to the same root store listener.
type Handle struct {
	id        uint64
	get       func() any
	subscribe func(callback func()) (unsubscribe func())
}

// ID returns the unique identifier for this handle.
func (h *Handle) ID() uint64 {
	return h.id
}

// Get returns the current derived value. Any failure in a chained field
// access or invocation surfaces here as a panic, to be handled by the
// host renderer's error boundary; this layer performs no recovery.
func (h *Handle) Get() any {
	return h.get()
}

// Subscribe registers callback to fire when the selected value changes.
// The returned unsubscribe function is idempotent.
func (h *Handle) Subscribe(callback func()) (unsubscribe func()) {
	return h.subscribe(callback)
}

// Field returns a handle for a named field of the current value.
// The lookup covers struct fields (through pointers), map keys, and
// methods; a method resolves to its bound func value, so a later Call
// carries the correct receiver.
func (h *Handle) Field(name string) *Handle {
	parent := h.get
	return &Handle{
		id:        nextID(),
		get:       func() any { return fieldOf(parent(), name) },
		subscribe: h.subscribe,
	}
}

// Call returns a handle for the result of invoking the current value.
// The underlying function is re-invoked fresh on every read; call
// results are never memoized.
func (h *Handle) Call(args ...any) *Handle {
	parent := h.get
	return &Handle{
		id:        nextID(),
		get:       func() any { return invoke(parent(), args) },
		subscribe: h.subscribe,
	}
}

// Map returns a handle whose value is fn applied to the current value.
func (h *Handle) Map(fn func(value any) any) *Handle {
	parent := h.get
	return &Handle{
		id:        nextID(),
		get:       func() any { return fn(parent()) },
		subscribe: h.subscribe,
	}
}

// fieldOf resolves a named field, map entry, or bound method on value.
func fieldOf(value any, name string) any {
	if value == nil {
		panic(fmt.Sprintf("signal: field %q of nil value", name))
	}

	rv := reflect.ValueOf(value)

	// Methods bind against the original (possibly pointer) receiver.
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface()
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic(fmt.Sprintf("signal: field %q of nil %s", name, rv.Type()))
		}
		rv = rv.Elem()
		if m := rv.MethodByName(name); m.IsValid() {
			return m.Interface()
		}
	}

	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() {
			panic(fmt.Sprintf("signal: %s has no field or method %q", rv.Type(), name))
		}
		return f.Interface()
	case reflect.Map:
		k := reflect.ValueOf(name)
		if !k.Type().AssignableTo(rv.Type().Key()) {
			panic(fmt.Sprintf("signal: cannot index %s with string key %q", rv.Type(), name))
		}
		e := rv.MapIndex(k)
		if !e.IsValid() {
			return nil
		}
		return e.Interface()
	default:
		panic(fmt.Sprintf("signal: cannot access field %q on %s", name, rv.Type()))
	}
}

// invoke calls value as a function with the given arguments.
func invoke(value any, args []any) any {
	if value == nil {
		panic("signal: call of nil value")
	}

	fn := reflect.ValueOf(value)
	if fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("signal: call of non-function %s", fn.Type()))
	}

	ft := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(paramType(ft, i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}

	out := fn.Call(in)
	return collectResults(out)
}

// paramType returns the declared type of parameter i, unwrapping the
// element type for variadic tails.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

func collectResults(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results
	}
}
