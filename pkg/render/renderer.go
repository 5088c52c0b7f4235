package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sigil-dev/sigil/pkg/vdom"
)

// voidElements cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ToString renders a VNode tree to an HTML string.
func ToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a VNode tree to w as HTML.
func ToWriter(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return writeElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := ToWriter(w, child); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		// Components are expanded by the runtime before serialization;
		// an unexpanded one renders as nothing.
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func writeElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := writeAttributes(w, node.Props); err != nil {
		return err
	}
	if voidElements[node.Tag] {
		_, err := io.WriteString(w, ">")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := ToWriter(w, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

func writeAttributes(w io.Writer, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}

	// Sorted for deterministic output.
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "key" || strings.HasPrefix(key, "_") {
			continue
		}
		value := props[key]

		if b, ok := value.(bool); ok {
			if b {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
			continue
		}

		s := attrString(value)
		if s == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return err
		}
	}
	return nil
}

func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// escapeHTML escapes text content for safe inclusion in HTML.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes attribute values; it additionally escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
