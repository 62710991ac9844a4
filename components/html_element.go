package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxattrs"
)

// HTMLElementProps configures HTMLElement.
type HTMLElementProps struct {
	hxattrs.Element

	// Tag is the element name. Defaults to "div"; names that are not
	// valid HTML tags also fall back to "div".
	Tag string
	// ComponentName is written to data-rsx. Defaults to "HtmlElement".
	ComponentName string
}

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// HTMLElement renders a single element carrying every attribute of props,
// plus a data-rsx marker naming the component that produced it. The other
// components in this package render their root element through it.
func HTMLElement(props HTMLElementProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		name := props.ComponentName
		if name == "" {
			name = "HtmlElement"
		}
		attrs := hxattrs.With("data-rsx", name).Merge(props.SpreadAttrs())

		return writeElement(ctx, w, tagOrDefault(props.Tag, "div"), attrs, children)
	})
}

// writeElement writes <tag attrs>children</tag>, or just the start tag for
// void elements.
func writeElement(ctx context.Context, w io.Writer, tag string, attrs hxattrs.Attrs, children templ.Component) error {
	start := "<" + tag
	if rendered := attrs.String(); rendered != "" {
		start += " " + rendered
	}
	if _, err := io.WriteString(w, start+">"); err != nil {
		return err
	}
	if voidElements[tag] {
		return nil
	}
	if children != nil {
		if err := children.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// tagOrDefault returns tag when it is a valid element name and def
// otherwise.
func tagOrDefault(tag, def string) string {
	if tag == "" {
		return def
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return def
		}
	}
	return tag
}
