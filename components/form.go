package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxattrs"
)

const (
	inputBase    = "block w-full rounded-md border-0 py-1.5 shadow-sm ring-1 ring-inset focus:ring-2 focus:ring-inset sm:text-sm sm:leading-6"
	inputValid   = "text-gray-900 ring-gray-300 placeholder:text-gray-400 focus:ring-indigo-600"
	inputInvalid = "bg-red-50 ring-red-500 text-red-500 placeholder-red-700 focus:ring-red-500 focus:border-red-500"
	errorText    = "text-sm text-red-600 dark:text-red-500"
)

// TextInputProps configures TextInput. The input's id is always its Name,
// so a Label can point at it.
type TextInputProps struct {
	hxattrs.Element `hxattrs:"omit=id,class"`

	// InputType is the input's type. Defaults to "text"; "textarea"
	// renders a textarea holding Value.
	InputType string
	// Error, when set, styles the input as invalid and is shown below it.
	Error string
}

// TextInput renders a text input (or textarea) followed by its error
// message.
func TextInput(props TextInputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx = templ.ClearChildren(ctx)

		inputType := props.InputType
		if inputType == "" {
			inputType = "text"
		}
		state := inputValid
		if props.Error != "" {
			state = inputInvalid
		}

		el := HTMLElementProps{Tag: "input"}
		el.ID = props.Name
		el.Class = strings.TrimSpace(inputBase + " " + state + " " + props.Class)
		el.Attrs = props.SpreadAttrs()

		var children templ.Component
		if inputType == "textarea" {
			el.Tag = "textarea"
			el.Attrs = el.Attrs.OmitMore("value")
			children = Text(props.Value)
		} else {
			el.Attrs = el.Attrs.Set("type", inputType)
		}

		if children != nil {
			ctx = templ.WithChildren(ctx, children)
		}
		if err := HTMLElement(el).Render(ctx, w); err != nil {
			return err
		}
		return ErrorMessage(props.Error).Render(templ.ClearChildren(ctx), w)
	})
}

// LabelProps configures Label.
type LabelProps struct {
	hxattrs.Element `hxattrs:"omit=class"`

	// ForInput is the id of the labelled control.
	ForInput string
	// Error colors the label as invalid.
	Error bool
}

// Label renders a form label.
func Label(props LabelProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		color := "text-gray-900"
		if props.Error {
			color = "text-red-600 dark:text-red-500"
		}

		el := HTMLElementProps{Tag: "label"}
		el.Class = strings.TrimSpace("block text-sm font-medium leading-6 " + color + " " + props.Class)
		el.Attrs = props.SpreadAttrs().Set("for", props.ForInput)

		return HTMLElement(el).Render(ctx, w)
	})
}

// ErrorMessage renders message as a form error, or nothing when message is
// empty.
func ErrorMessage(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := io.WriteString(w, `<p class="`+errorText+`">`+templ.EscapeString(message)+`</p>`)
		return err
	})
}
