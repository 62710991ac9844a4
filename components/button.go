package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxattrs"
)

// ButtonSize selects a button's padding and text size.
type ButtonSize string

const (
	ButtonXs ButtonSize = "xs"
	ButtonSm ButtonSize = "sm"
	ButtonMd ButtonSize = "md" // default
	ButtonLg ButtonSize = "lg"
	ButtonXl ButtonSize = "xl"
)

const (
	primaryColors   = "bg-indigo-600 font-semibold text-white shadow-sm hover:bg-indigo-500 focus-visible:outline focus-visible:outline-2 focus-visible:outline-offset-2 focus-visible:outline-indigo-600"
	secondaryColors = "bg-white font-semibold text-gray-900 shadow-sm ring-1 ring-inset ring-gray-300 hover:bg-gray-50"
)

var buttonSizes = map[ButtonSize]string{
	ButtonXs: "rounded px-2 py-1 text-xs",
	ButtonSm: "rounded px-2 py-1 text-sm",
	ButtonMd: "rounded-md px-2.5 py-1.5 text-sm",
	ButtonLg: "rounded-md px-3 py-2 text-sm",
	ButtonXl: "rounded-md px-3.5 py-2.5 text-sm",
}

// Class returns the sizing classes for s. Unknown sizes use ButtonMd.
func (s ButtonSize) Class() string {
	if c, ok := buttonSizes[s]; ok {
		return c
	}
	return buttonSizes[ButtonMd]
}

// ButtonProps configures PrimaryButton and SecondaryButton. The caller's
// Class is appended to the button's own classes.
type ButtonProps struct {
	hxattrs.Element `hxattrs:"omit=class"`

	Size ButtonSize
	// Tag defaults to "button". Use "a" with Href for a link styled as a
	// button.
	Tag  string
	Href string
}

// PrimaryButton renders a filled call-to-action button.
func PrimaryButton(props ButtonProps) templ.Component {
	return button(props, primaryColors)
}

// SecondaryButton renders an outlined button.
func SecondaryButton(props ButtonProps) templ.Component {
	return button(props, secondaryColors)
}

func button(props ButtonProps, colors string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tag := tagOrDefault(props.Tag, "button")

		el := HTMLElementProps{Tag: tag}
		el.Class = strings.TrimSpace(props.Size.Class() + " " + colors + " " + props.Class)
		el.Attrs = props.SpreadAttrs().
			Set("type", "button").
			SetIf("href", props.Href, props.Href != "" && tag == "a")

		return HTMLElement(el).Render(ctx, w)
	})
}
