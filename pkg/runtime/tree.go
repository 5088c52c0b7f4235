package runtime

import (
	"reflect"

	"github.com/sigil-dev/sigil/pkg/vdom"
)

// node is one mounted position in the committed tree. Element and
// fragment nodes own mounted children; component nodes own an instance
// whose output is its own mounted subtree.
type node struct {
	vnode    *vdom.VNode
	inst     *instance
	children []*node
}

func (rt *Runtime) mount(v *vdom.VNode) (*node, error) {
	if v == nil {
		return nil, nil
	}

	n := &node{vnode: v}
	switch v.Kind {
	case vdom.KindElement, vdom.KindFragment:
		for _, child := range v.Children {
			cn, err := rt.mount(child)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, cn)
		}
	case vdom.KindComponent:
		inst := &instance{rt: rt, comp: v.Comp}
		n.inst = inst
		if err := rt.renderInstance(inst); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// reconcile updates a mounted subtree in place where positions are
// compatible, remounting where they are not. Compatibility is kind,
// tag, key, and (for components) the component's concrete type, so a
// parent re-render that re-creates the same shaped element keeps the
// child instance and its hook slots alive.
func (rt *Runtime) reconcile(prev *node, next *vdom.VNode) (*node, error) {
	if next == nil {
		unmountNode(prev)
		return nil, nil
	}
	if prev == nil {
		return rt.mount(next)
	}

	if !compatible(prev.vnode, next) {
		unmountNode(prev)
		return rt.mount(next)
	}

	prev.vnode = next
	switch next.Kind {
	case vdom.KindElement, vdom.KindFragment:
		return prev, rt.reconcileChildren(prev, next.Children)
	case vdom.KindComponent:
		prev.inst.comp = next.Comp
		return prev, rt.renderInstance(prev.inst)
	default:
		return prev, nil
	}
}

func (rt *Runtime) reconcileChildren(parent *node, next []*vdom.VNode) error {
	prev := parent.children
	out := make([]*node, 0, len(next))

	for i, nv := range next {
		var pn *node
		if i < len(prev) {
			pn = prev[i]
		}
		cn, err := rt.reconcile(pn, nv)
		if err != nil {
			return err
		}
		if cn != nil {
			out = append(out, cn)
		}
	}
	for i := len(next); i < len(prev); i++ {
		unmountNode(prev[i])
	}

	parent.children = out
	return nil
}

func compatible(prev, next *vdom.VNode) bool {
	if prev.Kind != next.Kind || prev.Tag != next.Tag || prev.Key != next.Key {
		return false
	}
	if prev.Kind == vdom.KindComponent {
		return reflect.TypeOf(prev.Comp) == reflect.TypeOf(next.Comp)
	}
	return true
}

func unmountNode(n *node) {
	if n == nil {
		return
	}
	if n.inst != nil {
		n.inst.dispose()
		unmountNode(n.inst.output)
		n.inst.output = nil
		return
	}
	for _, child := range n.children {
		unmountNode(child)
	}
}

// materialize expands a mounted subtree into a plain VNode tree.
func materialize(n *node) *vdom.VNode {
	if n == nil {
		return &vdom.VNode{Kind: vdom.KindFragment}
	}

	switch n.vnode.Kind {
	case vdom.KindComponent:
		if n.inst == nil || n.inst.output == nil {
			return &vdom.VNode{Kind: vdom.KindFragment}
		}
		return materialize(n.inst.output)
	case vdom.KindElement, vdom.KindFragment:
		out := &vdom.VNode{
			Kind:  n.vnode.Kind,
			Tag:   n.vnode.Tag,
			Props: n.vnode.Props,
			Key:   n.vnode.Key,
		}
		for _, child := range n.children {
			out.Children = append(out.Children, materialize(child))
		}
		return out
	default:
		return n.vnode
	}
}
