package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sigil-dev/sigil/pkg/vdom"
)

// maxFlushPasses bounds re-render cascades within one Flush. State
// writes from effects re-enter the dirty queue; a cycle that never
// settles is reported as an error instead of spinning forever.
const maxFlushPasses = 100

// Runtime mounts and drives one component tree.
type Runtime struct {
	root   *node
	logger *slog.Logger

	schedMu   sync.Mutex
	dirty     []*instance
	dirtySeen map[*instance]bool
	wake      chan struct{}

	// pendingEffects collects effect slots to run in the commit phase
	// of the current flush. Touched only by the flushing goroutine.
	pendingEffects []*effectSlot

	unmounted bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the runtime's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// Mount renders root and commits the initial tree, running mount
// effects. A suspension during the initial render leaves the affected
// subtree empty until the pending value settles and a later Flush
// retries it; any other render error aborts the mount.
func Mount(root *vdom.VNode, opts ...Option) (*Runtime, error) {
	rt := &Runtime{
		logger:    slog.Default(),
		dirtySeen: make(map[*instance]bool),
		wake:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(rt)
	}

	n, err := rt.mount(root)
	if err != nil {
		return nil, err
	}
	rt.root = n
	rt.runPendingEffects()

	// Effects may have invalidated state already (e.g. subscription
	// races with a store that changed between render and commit).
	if err := rt.Flush(); err != nil {
		return nil, err
	}
	return rt, nil
}

// Wake returns a channel that receives a token whenever an instance
// becomes dirty. Drivers typically loop: receive, Flush, repeat.
func (rt *Runtime) Wake() <-chan struct{} {
	return rt.wake
}

// Flush re-renders every dirty instance and runs the resulting
// effects. It must be called from a single driver goroutine; it is not
// re-entrant.
func (rt *Runtime) Flush() error {
	for pass := 0; ; pass++ {
		batch := rt.takeDirty()
		if len(batch) == 0 {
			return nil
		}
		if pass == maxFlushPasses {
			return fmt.Errorf("runtime: flush did not settle after %d passes", maxFlushPasses)
		}

		for _, inst := range batch {
			if inst.unmounted {
				continue
			}
			if err := rt.renderInstance(inst); err != nil {
				return err
			}
		}
		rt.runPendingEffects()
	}
}

// Committed materializes the current committed tree as a plain VNode
// tree with all components expanded. Suspended instances that never
// produced output appear as empty fragments.
func (rt *Runtime) Committed() *vdom.VNode {
	return materialize(rt.root)
}

// Unmount tears down the tree, running all effect cleanups depth-first.
func (rt *Runtime) Unmount() {
	rt.schedMu.Lock()
	rt.unmounted = true
	rt.dirty = nil
	rt.dirtySeen = make(map[*instance]bool)
	rt.schedMu.Unlock()

	unmountNode(rt.root)
	rt.root = nil
}

// schedule marks an instance dirty and wakes the driver. Safe from any
// goroutine.
func (rt *Runtime) schedule(inst *instance) {
	rt.schedMu.Lock()
	if rt.unmounted || inst.unmounted || rt.dirtySeen[inst] {
		rt.schedMu.Unlock()
		return
	}
	rt.dirtySeen[inst] = true
	rt.dirty = append(rt.dirty, inst)
	rt.schedMu.Unlock()

	select {
	case rt.wake <- struct{}{}:
	default:
	}
}

func (rt *Runtime) takeDirty() []*instance {
	rt.schedMu.Lock()
	defer rt.schedMu.Unlock()
	batch := rt.dirty
	rt.dirty = nil
	rt.dirtySeen = make(map[*instance]bool)
	return batch
}

func (rt *Runtime) runPendingEffects() {
	effects := rt.pendingEffects
	rt.pendingEffects = nil

	for _, slot := range effects {
		if slot.owner.unmounted || !slot.pending {
			continue
		}
		slot.pending = false
		if slot.cleanup != nil {
			slot.cleanup()
			slot.cleanup = nil
		}
		slot.cleanup = slot.fn()
	}
}
