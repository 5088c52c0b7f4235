package render

import (
	"strings"
	"testing"

	"github.com/sigil-dev/sigil/pkg/vdom"
)

func mustRender(t *testing.T, n *vdom.VNode) string {
	t.Helper()
	s, err := ToString(n)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRenderElementWithSortedAttributes(t *testing.T) {
	n := vdom.El("div", vdom.Props{"id": "main", "class": "box", "data-x": 7}, "hi")
	got := mustRender(t, n)
	want := `<div class="box" data-x="7" id="main">hi</div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderSkipsKeyAndInternalProps(t *testing.T) {
	n := vdom.El("li", vdom.Props{"key": "row-1", "_internal": "x", "class": "row"})
	got := mustRender(t, n)
	if got != `<li class="row"></li>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	n := vdom.El("input", vdom.Props{"disabled": true, "checked": false, "type": "checkbox"})
	got := mustRender(t, n)
	if got != `<input disabled type="checkbox">` {
		t.Errorf("got %q", got)
	}
}

func TestRenderVoidElements(t *testing.T) {
	n := vdom.El("div", nil, vdom.El("br", nil), vdom.El("img", vdom.Props{"src": "/a.png"}))
	got := mustRender(t, n)
	if got != `<div><br><img src="/a.png"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderEscapesTextContent(t *testing.T) {
	got := mustRender(t, vdom.Text(`<script>alert("1 & 2")</script>`))
	if strings.Contains(got, "<script>") {
		t.Fatalf("content not escaped: %q", got)
	}
	if got != "&lt;script&gt;alert(&quot;1 &amp; 2&quot;)&lt;/script&gt;" {
		t.Errorf("got %q", got)
	}
}

func TestRenderEscapesAttributeValues(t *testing.T) {
	n := vdom.El("a", vdom.Props{"title": "a\"b\nc"})
	got := mustRender(t, n)
	if got != `<a title="a&quot;b&#10;c"></a>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderRawIsUnescaped(t *testing.T) {
	got := mustRender(t, vdom.Raw("<b>bold</b>"))
	if got != "<b>bold</b>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderFragmentAndNil(t *testing.T) {
	got := mustRender(t, vdom.Fragment("a", vdom.El("i", nil, "b"), "c"))
	if got != "a<i>b</i>c" {
		t.Errorf("got %q", got)
	}
	if s := mustRender(t, nil); s != "" {
		t.Errorf("nil node rendered %q", s)
	}
}

func TestRenderUnexpandedComponentIsEmpty(t *testing.T) {
	comp := vdom.Func(func(ctx vdom.Ctx) (*vdom.VNode, error) { return vdom.Text("x"), nil })
	got := mustRender(t, &vdom.VNode{Kind: vdom.KindComponent, Comp: comp})
	if got != "" {
		t.Errorf("got %q, want empty for unexpanded component", got)
	}
}
