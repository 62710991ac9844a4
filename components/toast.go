package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxattrs"
)

// Toast levels.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// toastDismissMillis is read by the client, which removes a toast after
// that many milliseconds.
const toastDismissMillis = "3000"

// Toast is a one-time notification message.
type Toast struct {
	Level   string // success, error, warning, info
	Message string
}

// ToastContainer renders the element toasts are appended to. Place it once
// in the page layout, typically near the end of <body>.
func ToastContainer() templ.Component {
	el := HTMLElementProps{ComponentName: "Toasts"}
	el.ID = "toasts"
	el.Class = "toast-container"
	return HTMLElement(el)
}

// Toasts renders toasts as an out-of-band swap appending to the
// ToastContainer. Any htmx response can carry it next to its main
// fragment. No toasts render nothing.
func Toasts(toasts ...Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(toasts) == 0 {
			return nil
		}

		container := HTMLElementProps{ComponentName: "Toasts"}
		container.ID = "toasts"
		container.Attrs = hxattrs.With("hx-swap-oob", "beforeend")

		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			for _, toast := range toasts {
				el := HTMLElementProps{ComponentName: "Toast"}
				el.Class = "toast toast-" + toast.Level
				el.Role = "status"
				el.Attrs = hxattrs.With("data-auto-dismiss", toastDismissMillis)
				if err := HTMLElement(el).Render(templ.WithChildren(ctx, Text(toast.Message)), w); err != nil {
					return err
				}
			}
			return nil
		})
		return HTMLElement(container).Render(templ.WithChildren(ctx, body), w)
	})
}
