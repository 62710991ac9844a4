package hxattrs

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"golang.org/x/text/unicode/norm"
)

// Render serializes an attribute set as name="value" pairs separated by
// single spaces, in ascending byte order of names.
//
//	Render(map[string]string{"foo": "baz", "bar": "fuzz fuzz-baz"})
//	// bar="fuzz fuzz-baz" foo="baz"
//
// Pairs with an empty value are skipped, as are names that are not valid
// HTML attribute names. Values are HTML-escaped, so a value can never break
// out of its quotes. Values are not always written verbatim: invalid UTF-8
// sequences become U+FFFD and the text is NFC-normalized, so the output is
// always valid UTF-8. An empty set renders as "".
func Render(m map[string]string) string {
	var sb strings.Builder
	for _, name := range slices.Sorted(maps.Keys(m)) {
		pair := RenderAttr(name, m[name])
		if pair == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pair)
	}
	return sb.String()
}

// RenderAttr serializes a single pair, or returns "" when value is empty or
// name is invalid. The value is cleaned as described in Render.
func RenderAttr(name, value string) string {
	if value == "" || !ValidName(name) {
		return ""
	}
	value = strings.ToValidUTF8(value, string(unicode.ReplacementChar))
	return name + `="` + templ.EscapeString(norm.NFC.String(value)) + `"`
}

// ValidName reports whether name can be written as an HTML attribute name:
// non-empty, with no whitespace, control characters, quotes, '<', '>', '/'
// or '='.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, invalidNameRune) < 0
}

func invalidNameRune(r rune) bool {
	switch r {
	case '"', '\'', '<', '>', '/', '=':
		return true
	}
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == unicode.ReplacementChar
}
