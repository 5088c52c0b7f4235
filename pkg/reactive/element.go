package reactive

import (
	"github.com/sigil-dev/sigil/pkg/signal"
	"github.com/sigil-dev/sigil/pkg/vdom"
)

// H creates an element, intercepting embedded signal handles.
//
// Discovery checks each top-level child for being a handle (child
// internals are not walked) and walks the props graph recursively. If
// nothing is found the call delegates to vdom.El unchanged, so
// non-reactive usage pays nothing. Otherwise the element becomes a
// coordinator component whose render callback resolves the handles to
// their current values and performs the real element creation.
//
// The coordinator's handle list is the concatenation of child handles
// then prop handles; order only feeds the positional diff that keeps
// subscriptions stable across renders.
func H(tag string, props vdom.Props, children ...any) *vdom.VNode {
	var sigs []*signal.Handle
	for _, child := range children {
		if h, ok := child.(*signal.Handle); ok && h != nil {
			sigs = append(sigs, h)
		}
	}
	sigs = append(sigs, signal.FindAll(map[string]any(props))...)

	if len(sigs) == 0 {
		return vdom.El(tag, props, children...)
	}

	render := func() (*vdom.VNode, error) {
		resolvedProps := props
		if props != nil {
			rp, err := signal.Resolve(map[string]any(props))
			if err != nil {
				return nil, err
			}
			resolvedProps = vdom.Props(rp.(map[string]any))
		}

		resolved := make([]any, len(children))
		for i, child := range children {
			h, ok := child.(*signal.Handle)
			if !ok || h == nil {
				resolved[i] = child
				continue
			}
			v, err := signal.ReadHandle(h)
			if err != nil {
				return nil, err
			}
			resolved[i] = v
		}

		return vdom.El(tag, resolvedProps, resolved...), nil
	}

	node := &vdom.VNode{
		Kind: vdom.KindComponent,
		Comp: &coordinator{signals: sigs, render: render},
	}
	if props != nil {
		if key, ok := props["key"].(string); ok {
			node.Key = key
		}
	}
	return node
}
