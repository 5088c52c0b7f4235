package el

import (
	"github.com/sigil-dev/sigil/pkg/reactive"
	"github.com/sigil-dev/sigil/pkg/vdom"
)

// VNode is re-exported for call-site convenience.
type VNode = vdom.VNode

// Props is re-exported for call-site convenience.
type Props = vdom.Props

// tag builds an element, peeling an optional leading Props argument.
func tag(name string, args []any) *VNode {
	if len(args) > 0 {
		if props, ok := args[0].(Props); ok {
			return reactive.H(name, props, args[1:]...)
		}
		if props, ok := args[0].(map[string]any); ok {
			return reactive.H(name, Props(props), args[1:]...)
		}
	}
	return reactive.H(name, nil, args...)
}

// Text creates a text node.
func Text(content string) *VNode { return vdom.Text(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode { return vdom.Textf(format, args...) }

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode { return vdom.Fragment(children...) }

func Html(args ...any) *VNode     { return tag("html", args) }
func Head(args ...any) *VNode     { return tag("head", args) }
func Body(args ...any) *VNode     { return tag("body", args) }
func Title(args ...any) *VNode    { return tag("title", args) }
func Header(args ...any) *VNode   { return tag("header", args) }
func Footer(args ...any) *VNode   { return tag("footer", args) }
func Main(args ...any) *VNode     { return tag("main", args) }
func Nav(args ...any) *VNode      { return tag("nav", args) }
func Section(args ...any) *VNode  { return tag("section", args) }
func Article(args ...any) *VNode  { return tag("article", args) }
func H1(args ...any) *VNode       { return tag("h1", args) }
func H2(args ...any) *VNode       { return tag("h2", args) }
func H3(args ...any) *VNode       { return tag("h3", args) }
func Div(args ...any) *VNode      { return tag("div", args) }
func P(args ...any) *VNode        { return tag("p", args) }
func Span(args ...any) *VNode     { return tag("span", args) }
func Pre(args ...any) *VNode      { return tag("pre", args) }
func Ul(args ...any) *VNode       { return tag("ul", args) }
func Ol(args ...any) *VNode       { return tag("ol", args) }
func Li(args ...any) *VNode       { return tag("li", args) }
func A(args ...any) *VNode        { return tag("a", args) }
func Strong(args ...any) *VNode   { return tag("strong", args) }
func Em(args ...any) *VNode       { return tag("em", args) }
func Code(args ...any) *VNode     { return tag("code", args) }
func Button(args ...any) *VNode   { return tag("button", args) }
func Input(args ...any) *VNode    { return tag("input", args) }
func Label(args ...any) *VNode    { return tag("label", args) }
func Form(args ...any) *VNode     { return tag("form", args) }
func Table(args ...any) *VNode    { return tag("table", args) }
func Thead(args ...any) *VNode    { return tag("thead", args) }
func Tbody(args ...any) *VNode    { return tag("tbody", args) }
func Tr(args ...any) *VNode       { return tag("tr", args) }
func Th(args ...any) *VNode       { return tag("th", args) }
func Td(args ...any) *VNode       { return tag("td", args) }
func Img(args ...any) *VNode      { return tag("img", args) }
func Br(args ...any) *VNode       { return tag("br", args) }
func Hr(args ...any) *VNode       { return tag("hr", args) }
func Small(args ...any) *VNode    { return tag("small", args) }
func Blockquote(args ...any) *VNode { return tag("blockquote", args) }
