package signal

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindAllSingleHandle(t *testing.T) {
	store := newTestStore(counterState{})
	h := NewCache().Derive(store, nil, nil)

	got := FindAll(h)
	if len(got) != 1 || got[0] != h {
		t.Errorf("FindAll(handle) = %v, want the handle itself", got)
	}
}

func TestFindAllWalksSlicesAndMaps(t *testing.T) {
	store := newTestStore(counterState{})
	cache := NewCache()
	a := cache.Derive(store, NewSelector(func(s any) any { return 1 }), nil)
	b := cache.Derive(store, NewSelector(func(s any) any { return 2 }), nil)

	value := []any{
		"plain",
		a,
		map[string]any{
			"x": []any{b},
			"y": 42,
		},
	}

	got := FindAll(value)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("FindAll = %v, want [a b]", got)
	}
}

func TestFindAllDoesNotDeduplicate(t *testing.T) {
	store := newTestStore(counterState{})
	h := NewCache().Derive(store, nil, nil)

	got := FindAll([]any{h, h})
	if len(got) != 2 {
		t.Errorf("FindAll returned %d handles, want 2 (no dedup)", len(got))
	}
}

func TestFindAllIgnoresPlainValues(t *testing.T) {
	got := FindAll(map[string]any{"a": 1, "b": []any{"x", nil}, "c": func() {}})
	if len(got) != 0 {
		t.Errorf("FindAll = %v, want empty", got)
	}
}

func TestResolveWithoutSignalsReturnsIdenticalStructure(t *testing.T) {
	slice := []any{1, "two", []any{3}}
	out, err := Resolve(slice)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.ValueOf(out).Pointer() != reflect.ValueOf(slice).Pointer() {
		t.Error("signal-free slice was copied")
	}

	m := map[string]any{"a": 1, "nested": map[string]any{"b": 2}}
	out, err = Resolve(m)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.ValueOf(out).Pointer() != reflect.ValueOf(m).Pointer() {
		t.Error("signal-free map was copied")
	}
}

func TestResolveRebuildsOnlyAffectedPath(t *testing.T) {
	store := newTestStore(counterState{Count: 5})
	sel := NewSelector(func(s any) any { return s.(counterState).Count })
	h := NewCache().Derive(store, sel, nil)

	sibling := map[string]any{"untouched": true}
	inner := map[string]any{"value": h}
	middle := map[string]any{"inner": inner, "sibling": sibling}
	top := map[string]any{"middle": middle}

	out, err := Resolve(top)
	if err != nil {
		t.Fatal(err)
	}

	outTop := out.(map[string]any)
	if reflect.ValueOf(outTop).Pointer() == reflect.ValueOf(top).Pointer() {
		t.Error("top level should be rebuilt")
	}
	outMiddle := outTop["middle"].(map[string]any)
	if reflect.ValueOf(outMiddle).Pointer() == reflect.ValueOf(middle).Pointer() {
		t.Error("intermediate level should be rebuilt")
	}
	if reflect.ValueOf(outMiddle["sibling"]).Pointer() != reflect.ValueOf(sibling).Pointer() {
		t.Error("sibling branch should be shared by reference")
	}
	if got := outMiddle["inner"].(map[string]any)["value"]; got != 5 {
		t.Errorf("resolved value = %v, want 5", got)
	}

	// Inputs are never mutated.
	if inner["value"] != h {
		t.Error("original structure was mutated")
	}
}

func TestReadHandlePendingAsyncSuspends(t *testing.T) {
	a := NewAsync()
	store := newTestStore(a)
	h := NewCache().Derive(store, nil, nil)

	// Suspension is idempotent while pending.
	for i := 0; i < 2; i++ {
		_, err := ReadHandle(h)
		var susp *Suspension
		if !errors.As(err, &susp) {
			t.Fatalf("read %d: err = %v, want *Suspension", i, err)
		}
		if susp.Async != a {
			t.Error("suspension should carry the pending Async")
		}
	}

	a.Fulfill("done")

	// Both a retried and a fresh read return the settled value.
	for i := 0; i < 2; i++ {
		got, err := ReadHandle(h)
		if err != nil {
			t.Fatalf("read after settle: %v", err)
		}
		if got != "done" {
			t.Errorf("read after settle = %v, want done", got)
		}
	}
}

func TestReadHandleRejectedAsyncReturnsReason(t *testing.T) {
	reason := errors.New("boom")
	a := NewAsync()
	a.Reject(reason)

	store := newTestStore(a)
	h := NewCache().Derive(store, nil, nil)

	_, err := ReadHandle(h)
	if !errors.Is(err, reason) {
		t.Errorf("err = %v, want stored rejection reason", err)
	}
}

func TestResolveSurfacesSuspensionFromNestedHandle(t *testing.T) {
	a := NewAsync()
	store := newTestStore(a)
	h := NewCache().Derive(store, nil, nil)

	_, err := Resolve(map[string]any{"deep": []any{h}})
	var susp *Suspension
	if !errors.As(err, &susp) {
		t.Fatalf("err = %v, want *Suspension", err)
	}
}
