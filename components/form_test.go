package components

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextInput(t *testing.T) {
	props := TextInputProps{}
	props.Name = "email"
	props.ID = "ignored"
	props.Placeholder = "you@example.com"

	out := render(t, TextInput(props), nil)
	tag, attrs := rootTag(t, out)

	if tag != "input" {
		t.Errorf("tag = %q, want input", tag)
	}
	want := map[string]string{
		"class":       inputBase + " " + inputValid,
		"data-rsx":    "HtmlElement",
		"id":          "email",
		"name":        "email",
		"placeholder": "you@example.com",
		"type":        "text",
	}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(out, "<p") {
		t.Errorf("error message rendered without an error: %s", out)
	}
}

func TestTextInputWithError(t *testing.T) {
	props := TextInputProps{InputType: "email", Error: "Required <field>"}
	props.Name = "email"

	out := render(t, TextInput(props), nil)
	_, attrs := rootTag(t, out)

	if attrs["type"] != "email" {
		t.Errorf("type = %q, want email", attrs["type"])
	}
	if !strings.Contains(attrs["class"], "bg-red-50") {
		t.Errorf("class %q lacks error styling", attrs["class"])
	}
	wantMsg := `<p class="` + errorText + `">Required &lt;field&gt;</p>`
	if !strings.HasSuffix(out, wantMsg) {
		t.Errorf("output %s\nshould end with %s", out, wantMsg)
	}
}

func TestTextInputTextarea(t *testing.T) {
	props := TextInputProps{InputType: "textarea"}
	props.Name = "bio"
	props.Value = "hi <b>"

	out := render(t, TextInput(props), nil)
	tag, attrs := rootTag(t, out)

	if tag != "textarea" {
		t.Errorf("tag = %q, want textarea", tag)
	}
	if _, ok := attrs["value"]; ok {
		t.Error("textarea has a value attribute")
	}
	if _, ok := attrs["type"]; ok {
		t.Error("textarea has a type attribute")
	}
	if !strings.HasSuffix(out, ">hi &lt;b&gt;</textarea>") {
		t.Errorf("textarea content not rendered: %s", out)
	}
}

func TestLabel(t *testing.T) {
	props := LabelProps{ForInput: "email", Error: true}
	props.Class = "sr-only"

	out := render(t, Label(props), Text("Email"))
	tag, attrs := rootTag(t, out)

	if tag != "label" {
		t.Errorf("tag = %q, want label", tag)
	}
	if attrs["for"] != "email" {
		t.Errorf("for = %q, want email", attrs["for"])
	}
	if want := "block text-sm font-medium leading-6 text-red-600 dark:text-red-500 sr-only"; attrs["class"] != want {
		t.Errorf("class = %q, want %q", attrs["class"], want)
	}
	if !strings.HasSuffix(out, ">Email</label>") {
		t.Errorf("label text not rendered: %s", out)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := render(t, ErrorMessage(""), nil); got != "" {
		t.Errorf("empty message rendered %q", got)
	}
	want := `<p class="text-sm text-red-600 dark:text-red-500">Too short</p>`
	if got := render(t, ErrorMessage("Too short"), nil); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestText(t *testing.T) {
	if got := render(t, Text(`<b>"x"</b>`), nil); got != "&lt;b&gt;&#34;x&#34;&lt;/b&gt;" {
		t.Errorf("Text not escaped: %s", got)
	}
}

func TestMarkup(t *testing.T) {
	raw := `<p onclick="steal()">Hi <strong class="x">bold</strong><script>alert(1)</script>` +
		`<a href="javascript:alert(1)">link</a></p>`

	got := render(t, Markup(raw), nil)

	for _, bad := range []string{"onclick", "<script", "alert(1)", "javascript:"} {
		if strings.Contains(got, bad) {
			t.Errorf("sanitized markup contains %q: %s", bad, got)
		}
	}
	if !strings.Contains(got, `<strong class="x">bold</strong>`) {
		t.Errorf("allowed markup removed: %s", got)
	}
	if SanitizeMarkup("   ") != "" {
		t.Error("blank markup should sanitize to empty")
	}
}
