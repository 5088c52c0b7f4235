package signal

import (
	"strings"
	"testing"
)

type greeter struct {
	Prefix string
}

func (g greeter) Greet(name string) string {
	return g.Prefix + name
}

func TestFieldOnStruct(t *testing.T) {
	store := newTestStore(userState{User: user{Name: "ada", Age: 30}})
	cache := NewCache()

	name := cache.Derive(store, nil, nil).Field("User").Field("Name")
	if got := name.Get(); got != "ada" {
		t.Errorf("Field chain = %v, want ada", got)
	}

	store.setState(userState{User: user{Name: "grace", Age: 30}})
	if got := name.Get(); got != "grace" {
		t.Errorf("Field chain after transition = %v, want grace", got)
	}
}

func TestFieldOnMap(t *testing.T) {
	store := newTestStore(map[string]any{"city": "London"})
	cache := NewCache()

	city := cache.Derive(store, nil, nil).Field("city")
	if got := city.Get(); got != "London" {
		t.Errorf("map field = %v, want London", got)
	}

	missing := cache.Derive(store, nil, nil).Field("country")
	if got := missing.Get(); got != nil {
		t.Errorf("missing map key = %v, want nil", got)
	}
}

func TestFieldResolvesBoundMethod(t *testing.T) {
	store := newTestStore(greeter{Prefix: "hi "})
	cache := NewCache()

	greet := cache.Derive(store, nil, nil).Field("Greet")
	result := greet.Call("ada")
	if got := result.Get(); got != "hi ada" {
		t.Errorf("bound method call = %v, want %q", got, "hi ada")
	}
}

func TestCallReinvokesOnEveryRead(t *testing.T) {
	calls := 0
	fn := func() any {
		calls++
		return calls
	}
	store := newTestStore(fn)
	cache := NewCache()

	result := cache.Derive(store, nil, nil).Call()
	if got := result.Get(); got != 1 {
		t.Errorf("first read = %v, want 1", got)
	}
	if got := result.Get(); got != 2 {
		t.Errorf("second read = %v, want 2", got)
	}
}

func TestMapDerivesLazily(t *testing.T) {
	store := newTestStore(counterState{Count: 3})
	sel := NewSelector(func(s any) any { return s.(counterState).Count })
	cache := NewCache()

	applied := 0
	doubled := cache.Derive(store, sel, nil).Map(func(v any) any {
		applied++
		return v.(int) * 2
	})

	if applied != 0 {
		t.Error("Map ran eagerly")
	}
	if got := doubled.Get(); got != 6 {
		t.Errorf("mapped value = %v, want 6", got)
	}
}

func TestChildHandlesAreNotCached(t *testing.T) {
	store := newTestStore(userState{User: user{Name: "ada"}})
	cache := NewCache()
	root := cache.Derive(store, nil, nil)

	if root.Field("User") == root.Field("User") {
		t.Error("expected a fresh handle per Field call")
	}
}

func TestChildSubscribeDelegatesToRoot(t *testing.T) {
	store := newTestStore(userState{User: user{Name: "ada"}})
	cache := NewCache()
	name := cache.Derive(store, nil, nil).Field("User").Field("Name")

	fired := 0
	unsub := name.Subscribe(func() { fired++ })
	defer unsub()

	if store.subscribeCalls != 1 {
		t.Errorf("store subscriptions = %d, want 1", store.subscribeCalls)
	}

	store.setState(userState{User: user{Name: "grace"}})
	if fired != 1 {
		t.Errorf("child subscriber fired %d times, want 1", fired)
	}
}

func TestFieldOfMissingNamePanics(t *testing.T) {
	store := newTestStore(user{Name: "ada"})
	cache := NewCache()
	h := cache.Derive(store, nil, nil).Field("Nope")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for missing field")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "Nope") {
			t.Errorf("panic = %v, want message naming the field", r)
		}
	}()
	h.Get()
}
