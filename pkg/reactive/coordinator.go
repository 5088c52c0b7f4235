package reactive

import (
	"sync/atomic"

	"github.com/sigil-dev/sigil/pkg/signal"
	"github.com/sigil-dev/sigil/pkg/vdom"
)

// coordinator is the component behind a wrapped element. It holds the
// handle list discovered at element creation, keeps subscriptions in
// step with that list across renders, and bumps a version counter to
// force a re-render whenever any subscribed handle fires.
type coordinator struct {
	signals []*signal.Handle
	render  func() (*vdom.VNode, error)
}

// Render implements vdom.Component.
//
// The handle list is stabilized against the previous render: only a
// length or positional identity change replaces it (and schedules one
// re-render), so an unchanged set never tears down and re-creates its
// subscriptions. Subscription itself happens after commit; the effect's
// cleanup unsubscribes the previous list first and stays safe on
// repeated calls.
func (c *coordinator) Render(ctx vdom.Ctx) (*vdom.VNode, error) {
	versionAny, setVersion := ctx.UseState(new(atomic.Uint64))
	version := versionAny.(*atomic.Uint64)

	stableAny, setStable := ctx.UseState(c.signals)
	stable := stableAny.([]*signal.Handle)
	if !sameHandles(stable, c.signals) {
		stable = c.signals
		setStable(c.signals)
	}

	ctx.UseEffect(func() func() {
		// One shared invalidation callback for every handle in the
		// list, so several handles firing within one store
		// notification collapse into a single re-render request. The
		// counter lives behind the slot's pointer: every fire
		// increments it no matter how stale the capturing closure is,
		// and the slot write is what schedules the re-render.
		invalidate := func() {
			version.Add(1)
			setVersion(version)
		}

		unsubs := make([]func(), 0, len(stable))
		for _, h := range stable {
			unsubs = append(unsubs, h.Subscribe(invalidate))
		}
		return func() {
			for _, unsub := range unsubs {
				unsub()
			}
		}
	}, []any{stable})

	// The render callback runs synchronously inside this pass so that
	// a suspension raised during value resolution reaches the host.
	return c.render()
}

// sameHandles reports positional identity equality of two handle lists.
func sameHandles(a, b []*signal.Handle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
