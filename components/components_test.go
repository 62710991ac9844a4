package components

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"

	"github.com/pthm/hxattrs"
	"github.com/pthm/hxattrs/hxattrstest"
)

// render renders c with optional children and returns the markup.
func render(t *testing.T, c templ.Component, children templ.Component) string {
	t.Helper()
	return hxattrstest.MustRender(t, c, children).HTML
}

// rootTag returns the name and attributes of the first start tag in s.
func rootTag(t *testing.T, s string) (string, map[string]string) {
	t.Helper()
	root := (&hxattrstest.Result{HTML: s}).Root()
	if root.Tag == "" {
		t.Fatalf("no start tag in %q", s)
	}
	return root.Tag, root.Attrs
}

func TestHTMLElement(t *testing.T) {
	outer := HTMLElementProps{}
	outer.Class = "THIS_CLASS_SHOULD_BE_OMITTED"
	outer.ID = "set-id"
	outer.Role = "set-role"

	omitted := HTMLElementProps{}
	omitted.Class = "hard-coded-class"
	omitted.Attrs = outer.Element.Spread(hxattrs.MustOmit("class"))

	tests := []struct {
		name     string
		props    HTMLElementProps
		children templ.Component
		expect   string
	}{
		{
			name:   "no attrs",
			props:  HTMLElementProps{},
			expect: `<div data-rsx="HtmlElement"></div>`,
		},
		{
			name:   "tag set",
			props:  HTMLElementProps{Tag: "button"},
			expect: `<button data-rsx="HtmlElement"></button>`,
		},
		{
			name:     "children",
			props:    HTMLElementProps{Tag: "button"},
			children: templ.Raw("<p>Paragraph text.</p>"),
			expect:   `<button data-rsx="HtmlElement"><p>Paragraph text.</p></button>`,
		},
		{
			name:     "data attributes",
			props:    HTMLElementProps{Tag: "button", Element: hxattrs.Element{Attrs: hxattrs.With("data-foo", "baz")}},
			children: templ.Raw("<h1>Header text.</h1>"),
			expect:   `<button data-foo="baz" data-rsx="HtmlElement"><h1>Header text.</h1></button>`,
		},
		{
			name:     "attrs with omit",
			props:    omitted,
			children: Text("What an awesome element!"),
			expect:   `<div class="hard-coded-class" data-rsx="HtmlElement" id="set-id" role="set-role">What an awesome element!</div>`,
		},
		{
			name:   "void element",
			props:  HTMLElementProps{Tag: "input"},
			expect: `<input data-rsx="HtmlElement">`,
		},
		{
			name:   "invalid tag falls back to div",
			props:  HTMLElementProps{Tag: `script onload="x"`},
			expect: `<div data-rsx="HtmlElement"></div>`,
		},
		{
			name:   "component name",
			props:  HTMLElementProps{ComponentName: "Card"},
			expect: `<div data-rsx="Card"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, HTMLElement(tt.props), tt.children)
			if got != tt.expect {
				t.Errorf("got  %s\nwant %s", got, tt.expect)
			}
		})
	}
}

func TestHTMLElementDoesNotLeakChildren(t *testing.T) {
	inner := HTMLElement(HTMLElementProps{Tag: "span"})
	outer := HTMLElement(HTMLElementProps{})

	got := render(t, outer, inner)
	want := `<div data-rsx="HtmlElement"><span data-rsx="HtmlElement"></span></div>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestTagOrDefault(t *testing.T) {
	tests := []struct {
		tag    string
		expect string
	}{
		{"", "div"},
		{"section", "section"},
		{"h1", "h1"},
		{"my-widget", "my-widget"},
		{"1h", "div"},
		{"-x", "div"},
		{"a b", "div"},
		{"<a>", "div"},
	}

	for _, tt := range tests {
		if got := tagOrDefault(tt.tag, "div"); got != tt.expect {
			t.Errorf("tagOrDefault(%q) = %q, want %q", tt.tag, got, tt.expect)
		}
	}
}

func TestControl(t *testing.T) {
	props := ControlProps{Control: "tabs"}
	props.ID = "t"

	got := render(t, Control(props), Text("child"))
	want := `<div data-rsx="Control" data-yc-control="tabs" id="t">child` + attachScript + `</div>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestToggle(t *testing.T) {
	props := ToggleProps{}
	props.AriaLabelledby = "menu-label"

	_, attrs := rootTag(t, render(t, Toggle(props), nil))
	want := map[string]string{
		"aria-labelledby": "menu-label",
		"data-rsx":        "Control",
		"data-yc-control": "toggle",
	}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestTransition(t *testing.T) {
	props := TransitionProps{
		Enter:     "transition ease-out duration-100",
		EnterFrom: "opacity-0",
		EnterTo:   "opacity-100",
		Leave:     "transition ease-in duration-75",
		LeaveFrom: "opacity-100",
		LeaveTo:   "opacity-0",
		Tag:       "section",
	}
	props.Class = "absolute"
	props.Attrs = hxattrs.With("class", "ignored")

	tag, attrs := rootTag(t, render(t, Transition(props), nil))
	if tag != "section" {
		t.Errorf("tag = %q, want section", tag)
	}

	want := map[string]string{
		"class":                       "hidden absolute",
		"data-rsx":                    "Transition",
		"data-yc-control":             "transition",
		"data-transition-enter":       "transition ease-out duration-100",
		"data-transition-enter-start": "opacity-0",
		"data-transition-enter-end":   "opacity-100",
		"data-transition-leave":       "transition ease-in duration-75",
		"data-transition-leave-start": "opacity-100",
		"data-transition-leave-end":   "opacity-0",
	}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}
