package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxattrs"
)

const attachScript = `<script>YcControls.attach(document.currentScript.parentElement);</script>`

// ControlProps configures Control.
type ControlProps struct {
	hxattrs.Element

	// Control names the client-side controller, written to
	// data-yc-control.
	Control string
}

// Control renders a div bound to a client-side controller. The children
// are followed by a script that attaches the controller to the div.
func Control(props ControlProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		el := HTMLElementProps{ComponentName: "Control"}
		el.Attrs = props.SpreadAttrs().Set("data-yc-control", props.Control)

		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, attachScript)
			return err
		})
		return HTMLElement(el).Render(templ.WithChildren(ctx, body), w)
	})
}

// ToggleProps configures Toggle.
type ToggleProps struct {
	hxattrs.Element
}

// Toggle is a Control bound to the "toggle" controller.
func Toggle(props ToggleProps) templ.Component {
	return Control(ControlProps{
		Element: hxattrs.Element{Attrs: props.SpreadAttrs()},
		Control: "toggle",
	})
}
