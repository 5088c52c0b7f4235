package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return &VNode{
		Kind:     KindFragment,
		Children: Normalize(children),
	}
}

// El creates an element node. Children may be *VNode, nested []*VNode
// or []any, Component, string, or any printable value; nils are
// skipped.
func El(tag string, props Props, children ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: Normalize(children),
	}
	if props != nil {
		if key, ok := props["key"].(string); ok {
			node.Key = key
		}
	}
	return node
}

// Normalize converts loose child arguments into VNodes.
func Normalize(children []any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		out = appendChild(out, child)
	}
	return out
}

func appendChild(out []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil:
		return out
	case *VNode:
		if v != nil {
			out = append(out, v)
		}
	case []*VNode:
		for _, c := range v {
			if c != nil {
				out = append(out, c)
			}
		}
	case []any:
		for _, c := range v {
			out = appendChild(out, c)
		}
	case Component:
		out = append(out, &VNode{Kind: KindComponent, Comp: v})
	case string:
		out = append(out, Text(v))
	default:
		out = append(out, Text(fmt.Sprint(v)))
	}
	return out
}
