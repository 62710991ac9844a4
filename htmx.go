package hxattrs

import (
	"encoding/json"
	"net/http"
)

// IsHTMX returns true if the request originated from htmx.
//
// htmx sends HX-Request: true on all requests. Use this to render a
// fragment for htmx and the full page for direct browser requests:
//
//	if hxattrs.IsHTMX(r) {
//	    return row(props)
//	}
//	return page(props)
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}

// CurrentURL returns the URL the browser is on, from the HX-Current-URL
// header. Returns "" for non-htmx requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TriggerName returns the name attribute of the element that triggered the
// request. Form handlers use it to tell submit buttons apart:
//
//	if hxattrs.TriggerName(r) == "save-draft" {
//	    // Handle draft save
//	}
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}

// TriggerID returns the id attribute of the element that triggered the
// request.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id attribute of the element receiving the response.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// TriggerHeader builds an HX-Trigger response header value.
//
// Without data the event name is returned as is. With data the value is
// the JSON object {event: data}, which htmx exposes as evt.detail.
func TriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	encoded, err := json.Marshal(map[string]any{event: data})
	if err != nil {
		return event
	}
	return string(encoded)
}
