package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxattrs"
)

// TransitionProps configures Transition. Each phase holds the classes the
// transition controller applies during it.
type TransitionProps struct {
	hxattrs.Element `hxattrs:"omit=class"`

	Enter     string
	EnterFrom string
	EnterTo   string
	Leave     string
	LeaveFrom string
	LeaveTo   string

	// Tag defaults to "div".
	Tag string
}

// Transition renders an element that starts hidden and is shown and hidden
// by the client-side transition controller.
func Transition(props TransitionProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		el := HTMLElementProps{Tag: props.Tag, ComponentName: "Transition"}
		el.Class = strings.TrimSpace("hidden " + props.Class)
		el.Attrs = props.SpreadAttrs().
			Set("data-yc-control", "transition").
			Set("data-transition-enter", props.Enter).
			Set("data-transition-enter-start", props.EnterFrom).
			Set("data-transition-enter-end", props.EnterTo).
			Set("data-transition-leave", props.Leave).
			Set("data-transition-leave-start", props.LeaveFrom).
			Set("data-transition-leave-end", props.LeaveTo)

		return HTMLElement(el).Render(ctx, w)
	})
}
