package runtime

import (
	"errors"
	"sync"

	"github.com/sigil-dev/sigil/pkg/signal"
	"github.com/sigil-dev/sigil/pkg/vdom"
)

// instance is the persistent identity of one mounted component. Hook
// slots survive re-renders; the component value itself is replaced
// whenever the parent re-creates the element.
type instance struct {
	rt   *Runtime
	comp vdom.Component

	// output is the mounted subtree from the last successful render.
	// nil until the first render completes (e.g. while suspended).
	output *node

	slots   []any
	slotIdx int

	unmounted bool
}

// stateCell is the storage behind one UseState slot. Setters may be
// invoked from store-listener goroutines, so the value is guarded.
type stateCell struct {
	owner *instance
	mu    sync.Mutex
	value any
}

func (c *stateCell) get() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *stateCell) set(v any) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.owner.rt.schedule(c.owner)
}

// effectSlot is the storage behind one UseEffect slot.
type effectSlot struct {
	owner   *instance
	fn      func() func()
	deps    []any
	cleanup func()
	pending bool
}

// renderInstance re-renders an instance and reconciles its output.
// A suspension keeps the previous output and arms a retry; other
// errors propagate.
func (rt *Runtime) renderInstance(inst *instance) error {
	inst.slotIdx = 0

	out, err := inst.comp.Render(inst)
	if err != nil {
		var susp *signal.Suspension
		if errors.As(err, &susp) {
			susp.Async.OnSettle(func() {
				rt.schedule(inst)
			})
			return nil
		}
		return err
	}

	next, err := rt.reconcile(inst.output, out)
	if err != nil {
		return err
	}
	inst.output = next
	return nil
}

// nextSlot returns the current hook slot, or nil on first render.
func (inst *instance) nextSlot() (idx int, slot any) {
	idx = inst.slotIdx
	inst.slotIdx++
	if idx < len(inst.slots) {
		return idx, inst.slots[idx]
	}
	inst.slots = append(inst.slots, nil)
	return idx, nil
}

// UseState implements vdom.Ctx.
func (inst *instance) UseState(initial any) (any, func(any)) {
	idx, slot := inst.nextSlot()

	cell, ok := slot.(*stateCell)
	if !ok {
		cell = &stateCell{owner: inst, value: initial}
		inst.slots[idx] = cell
	}
	return cell.get(), cell.set
}

// UseEffect implements vdom.Ctx.
func (inst *instance) UseEffect(fn func() func(), deps []any) {
	idx, slot := inst.nextSlot()

	es, ok := slot.(*effectSlot)
	if !ok {
		es = &effectSlot{owner: inst, fn: fn, deps: deps, pending: true}
		inst.slots[idx] = es
		inst.rt.pendingEffects = append(inst.rt.pendingEffects, es)
		return
	}

	if !depsEqual(es.deps, deps) {
		es.fn = fn
		es.deps = deps
		if !es.pending {
			es.pending = true
			inst.rt.pendingEffects = append(inst.rt.pendingEffects, es)
		}
	}
}

// Invalidate implements vdom.Ctx.
func (inst *instance) Invalidate() {
	inst.rt.schedule(inst)
}

// dispose runs effect cleanups and marks the instance dead.
func (inst *instance) dispose() {
	if inst.unmounted {
		return
	}
	inst.unmounted = true

	for _, slot := range inst.slots {
		if es, ok := slot.(*effectSlot); ok {
			es.pending = false
			if es.cleanup != nil {
				es.cleanup()
				es.cleanup = nil
			}
		}
	}
}

// depsEqual compares dependency lists by length and positional
// reference identity.
func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !signal.SameValue(a[i], b[i]) {
			return false
		}
	}
	return true
}
