package hxattrs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SwapMode is an hx-swap strategy.
// See https://htmx.org/attributes/hx-swap/
type SwapMode string

const (
	SwapOuter       SwapMode = "outerHTML"   // replace the whole target element
	SwapInner       SwapMode = "innerHTML"   // replace the target's children
	SwapBeforeEnd   SwapMode = "beforeend"   // append inside the target
	SwapAfterEnd    SwapMode = "afterend"    // insert after the target
	SwapBeforeBegin SwapMode = "beforebegin" // insert before the target
	SwapAfterBegin  SwapMode = "afterbegin"  // prepend inside the target
	SwapDelete      SwapMode = "delete"      // remove the target
	SwapNone        SwapMode = "none"        // discard the response
)

// Request builds the hx-* attributes of an htmx request. Like Attrs it is a
// value: every method returns a new Request.
//
//	req := hxattrs.NewRequest(http.MethodDelete, "/items/42").
//	    TargetClosest("li").
//	    Swap(hxattrs.SwapDelete).
//	    Confirm("Delete item?")
//	props.Attrs = props.Attrs.Merge(req.Attrs())
type Request struct {
	url   string
	attrs Attrs
}

// NewRequest starts a request for url. GET (or an empty method) maps to
// hx-get; POST, PUT, PATCH and DELETE to their hx-* counterparts. The swap
// mode defaults to SwapOuter.
func NewRequest(method, url string) Request {
	var verb string
	switch method {
	case http.MethodPost:
		verb = "hx-post"
	case http.MethodPut:
		verb = "hx-put"
	case http.MethodPatch:
		verb = "hx-patch"
	case http.MethodDelete:
		verb = "hx-delete"
	default:
		verb = "hx-get"
	}
	return Request{
		url:   url,
		attrs: With(verb, url).Set("hx-swap", string(SwapOuter)),
	}
}

// URL returns the request URL.
func (r Request) URL() string {
	return r.url
}

// Attrs returns the request's attributes.
func (r Request) Attrs() Attrs {
	return r.attrs
}

// AsLink returns a plain href for the URL with no hx-* attributes, for
// downloads and full page navigation.
func (r Request) AsLink() Attrs {
	return With("href", r.url)
}

func (r Request) set(name, value string) Request {
	r.attrs = r.attrs.Set(name, value)
	return r
}

// Target sets hx-target to a CSS selector.
func (r Request) Target(selector string) Request {
	return r.set("hx-target", selector)
}

// TargetThis targets the element issuing the request.
func (r Request) TargetThis() Request {
	return r.set("hx-target", "this")
}

// TargetClosest targets the closest ancestor matching selector.
func (r Request) TargetClosest(selector string) Request {
	return r.set("hx-target", "closest "+selector)
}

// TargetFind targets the first descendant matching selector.
func (r Request) TargetFind(selector string) Request {
	return r.set("hx-target", "find "+selector)
}

// TargetNext targets the next sibling matching selector.
func (r Request) TargetNext(selector string) Request {
	return r.set("hx-target", "next "+selector)
}

// TargetPrevious targets the previous sibling matching selector.
func (r Request) TargetPrevious(selector string) Request {
	return r.set("hx-target", "previous "+selector)
}

// Swap sets hx-swap.
func (r Request) Swap(mode SwapMode) Request {
	return r.set("hx-swap", string(mode))
}

// Trigger sets hx-trigger verbatim.
func (r Request) Trigger(trigger string) Request {
	return r.set("hx-trigger", trigger)
}

// Every polls at the given interval.
func (r Request) Every(d time.Duration) Request {
	return r.Trigger("every " + formatDuration(d))
}

// OnEvent fires on an event bubbling to body.
func (r Request) OnEvent(event string) Request {
	return r.Trigger(event + " from:body")
}

// OnLoad fires once the element is loaded.
func (r Request) OnLoad() Request {
	return r.Trigger("load")
}

// OnIntersect fires the first time the element enters the viewport.
func (r Request) OnIntersect() Request {
	return r.Trigger("intersect once")
}

// OnRevealed fires when the element is scrolled into view.
func (r Request) OnRevealed() Request {
	return r.Trigger("revealed")
}

// Confirm asks the user to confirm before sending.
func (r Request) Confirm(message string) Request {
	return r.set("hx-confirm", message)
}

// Indicator sets the element shown while the request is in flight.
func (r Request) Indicator(selector string) Request {
	return r.set("hx-indicator", selector)
}

// PushURL pushes the request URL into browser history.
func (r Request) PushURL() Request {
	return r.set("hx-push-url", "true")
}

// Vals sets hx-vals to the JSON encoding of vals. Values that cannot be
// encoded leave the request unchanged.
func (r Request) Vals(vals map[string]any) Request {
	data, err := json.Marshal(vals)
	if err != nil {
		return r
	}
	return r.set("hx-vals", string(data))
}

// SealedVals seals a into hx-vals under key, so the handler can rebuild the
// same bag with Unseal. Sealing errors are returned rather than dropped.
func (r Request) SealedVals(enc *Encoder, key string, a Attrs, sensitive bool) (Request, error) {
	token, err := Seal(enc, a, sensitive)
	if err != nil {
		return r, fmt.Errorf("seal %s: %w", key, err)
	}
	return r.Vals(map[string]any{key: token}), nil
}

// formatDuration renders whole seconds as "Ns" and shorter spans as "Nms".
func formatDuration(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
