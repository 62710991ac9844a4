// Package hxattrstest renders components and htmx handlers in tests and
// inspects the HTML they produce.
//
//	res := hxattrstest.MustRender(t, components.PrimaryButton(props), components.Text("Save"))
//	root := res.Root()
//	if root.Attrs["type"] != "button" {
//	    t.Error("button has no type")
//	}
package hxattrstest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// Element is a start tag found in rendered HTML.
type Element struct {
	Tag   string
	Attrs map[string]string
}

// Toast is a toast notification found in rendered HTML.
type Toast struct {
	Level   string
	Message string
}

// Result holds rendered HTML and, for requests, the response metadata.
//
// Provides convenience methods for asserting on HTML content, elements,
// status codes, headers, events and toasts.
type Result struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
}

// Render renders c, passing children as its templ children when non-nil.
func Render(c templ.Component, children templ.Component) (*Result, error) {
	return RenderWithContext(context.Background(), c, children)
}

// RenderWithContext renders c with ctx.
func RenderWithContext(ctx context.Context, c templ.Component, children templ.Component) (*Result, error) {
	if children != nil {
		ctx = templ.WithChildren(ctx, children)
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &Result{HTML: buf.String(), StatusCode: http.StatusOK}, nil
}

// MustRender renders c and fails the test on error.
func MustRender(t testing.TB, c templ.Component, children templ.Component) *Result {
	t.Helper()
	res, err := Render(c, children)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return res
}

// HTMLContains checks if the HTML contains a substring.
func (r *Result) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *Result) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *Result) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Elements returns every start tag in document order.
func (r *Result) Elements() []Element {
	var out []Element
	z := html.NewTokenizer(strings.NewReader(r.HTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			out = append(out, element(z.Token()))
		}
	}
}

// Root returns the first start tag, or the zero Element when there is
// none.
func (r *Result) Root() Element {
	if els := r.Elements(); len(els) > 0 {
		return els[0]
	}
	return Element{}
}

// Find returns the start tags named tag.
func (r *Result) Find(tag string) []Element {
	var out []Element
	for _, el := range r.Elements() {
		if el.Tag == tag {
			out = append(out, el)
		}
	}
	return out
}

// Toasts returns the toasts in the HTML, identified by their
// "toast toast-<level>" class.
func (r *Result) Toasts() []Toast {
	var toasts []Toast
	z := html.NewTokenizer(strings.NewReader(r.HTML))
	var current *Toast
	depth := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return toasts
		case html.StartTagToken:
			el := element(z.Token())
			if current != nil {
				depth++
				continue
			}
			if level, ok := strings.CutPrefix(el.Attrs["class"], "toast toast-"); ok {
				current = &Toast{Level: level}
				depth = 0
			}
		case html.TextToken:
			if current != nil {
				current.Message += string(z.Text())
			}
		case html.EndTagToken:
			if current == nil {
				continue
			}
			if depth > 0 {
				depth--
				continue
			}
			toasts = append(toasts, *current)
			current = nil
		}
	}
}

// HasToast checks if a toast was rendered with the given level and
// message.
func (r *Result) HasToast(level, message string) bool {
	for _, t := range r.Toasts() {
		if t.Level == level && t.Message == message {
			return true
		}
	}
	return false
}

// HasEvent checks if an event was triggered through HX-Trigger.
func (r *Result) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// IsOK checks if the status code is 200.
func (r *Result) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *Result) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *Result) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

func element(tok html.Token) Element {
	attrs := make(map[string]string, len(tok.Attr))
	for _, a := range tok.Attr {
		attrs[a.Key] = a.Val
	}
	return Element{Tag: tok.Data, Attrs: attrs}
}

// parseTriggerHeader parses an HX-Trigger header value into event names.
// The header is either a comma separated list of names or a JSON object
// keyed by event name.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var events map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &events); err != nil {
			return nil
		}
		names := make([]string, 0, len(events))
		for name := range events {
			names = append(names, name)
		}
		return names
	}

	var names []string
	for _, name := range strings.Split(trigger, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// RequestBuilder builds an htmx request for a handler under test.
//
//	res := hxattrstest.NewRequest(http.MethodPost, "/todos").
//	    WithFormData("title", "Walk the dog").
//	    Execute(handler)
type RequestBuilder struct {
	method  string
	target  string
	form    url.Values
	headers http.Header
	ctx     context.Context
}

// NewRequest creates a request builder. The request carries
// HX-Request: true unless WithoutHTMX is called.
func NewRequest(method, target string) *RequestBuilder {
	headers := make(http.Header)
	headers.Set("HX-Request", "true")
	return &RequestBuilder{
		method:  method,
		target:  target,
		form:    make(url.Values),
		headers: headers,
		ctx:     context.Background(),
	}
}

// WithFormData adds form data to the request.
func (b *RequestBuilder) WithFormData(key, value string) *RequestBuilder {
	b.form.Set(key, value)
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *RequestBuilder) WithFormValues(data map[string]string) *RequestBuilder {
	for k, v := range data {
		b.form.Set(k, v)
	}
	return b
}

// WithHeader adds a header to the request.
func (b *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	b.headers.Set(key, value)
	return b
}

// WithoutHTMX removes the HX-Request header, as a plain browser request.
func (b *RequestBuilder) WithoutHTMX() *RequestBuilder {
	b.headers.Del("HX-Request")
	return b
}

// WithContext sets the context for the request.
func (b *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	b.ctx = ctx
	return b
}

// Build returns the request.
func (b *RequestBuilder) Build() *http.Request {
	var body io.Reader = http.NoBody
	if len(b.form) > 0 {
		body = strings.NewReader(b.form.Encode())
	}

	req := httptest.NewRequest(b.method, b.target, body).WithContext(b.ctx)
	if len(b.form) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header[k] = v
	}
	return req
}

// Execute serves the request with h and records the response.
func (b *RequestBuilder) Execute(h http.Handler) *Result {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, b.Build())

	return &Result{
		HTML:            rec.Body.String(),
		StatusCode:      rec.Code,
		Headers:         rec.Header(),
		TriggeredEvents: parseTriggerHeader(rec.Header().Get("HX-Trigger")),
	}
}
