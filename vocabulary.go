package hxattrs

import (
	"go/token"
	"strings"
)

// VocabularyVersion identifies the attribute vocabulary revision. Adding a
// name bumps it without breaking generated code; renaming or removing one is
// a breaking change for every props struct embedding Element.
const VocabularyVersion = 2

// Group classifies a vocabulary name.
type Group int

const (
	// GroupIdentity covers identity and styling hooks (id, class, name).
	GroupIdentity Group = iota
	// GroupARIA covers role and aria-* attributes.
	GroupARIA
	// GroupInteraction covers event handlers and form control attributes.
	GroupInteraction
	// GroupHTMX covers the hx-* request augmentation attributes.
	// See https://htmx.org/reference/#attributes
	GroupHTMX
)

// String returns the group's name.
func (g Group) String() string {
	switch g {
	case GroupIdentity:
		return "identity"
	case GroupARIA:
		return "aria"
	case GroupInteraction:
		return "interaction"
	case GroupHTMX:
		return "htmx"
	default:
		return "unknown"
	}
}

type vocabEntry struct {
	name  string
	group Group
}

var vocabulary = []vocabEntry{
	{"id", GroupIdentity},
	{"class", GroupIdentity},
	{"name", GroupIdentity},

	{"role", GroupARIA},
	{"aria-orientation", GroupARIA},
	{"aria-labelledby", GroupARIA},

	{"onclick", GroupInteraction},
	{"tabindex", GroupInteraction},
	{"autocomplete", GroupInteraction},
	{"value", GroupInteraction},
	{"placeholder", GroupInteraction},
	{"for", GroupInteraction},
	{"type", GroupInteraction},

	{"hx-boost", GroupHTMX},
	{"hx-get", GroupHTMX},
	{"hx-post", GroupHTMX},
	{"hx-on", GroupHTMX},
	{"hx-push-url", GroupHTMX},
	{"hx-select", GroupHTMX},
	{"hx-select-oob", GroupHTMX},
	{"hx-swap", GroupHTMX},
	{"hx-swap-oob", GroupHTMX},
	{"hx-target", GroupHTMX},
	{"hx-trigger", GroupHTMX},
	{"hx-vals", GroupHTMX},

	// https://htmx.org/reference/#attributes-additional
	{"hx-confirm", GroupHTMX},
	{"hx-delete", GroupHTMX},
	{"hx-disable", GroupHTMX},
	{"hx-disabled-elt", GroupHTMX},
	{"hx-disinherit", GroupHTMX},
	{"hx-encoding", GroupHTMX},
	{"hx-ext", GroupHTMX},
	{"hx-headers", GroupHTMX},
	{"hx-history", GroupHTMX},
	{"hx-history-elt", GroupHTMX},
	{"hx-include", GroupHTMX},
	{"hx-indicator", GroupHTMX},
	{"hx-params", GroupHTMX},
	{"hx-patch", GroupHTMX},
	{"hx-preserve", GroupHTMX},
	{"hx-prompt", GroupHTMX},
	{"hx-put", GroupHTMX},
	{"hx-replace-url", GroupHTMX},
	{"hx-request", GroupHTMX},
	{"hx-sse", GroupHTMX},
	{"hx-sync", GroupHTMX},
	{"hx-validate", GroupHTMX},
	{"hx-vars", GroupHTMX},
	{"hx-ws", GroupHTMX},
}

// vocabIndex maps canonical names to their position in vocabulary.
var vocabIndex = func() map[string]int {
	m := make(map[string]int, len(vocabulary))
	for i, e := range vocabulary {
		m[e.name] = i
	}
	return m
}()

// Vocabulary returns the canonical attribute names in vocabulary order.
// The returned slice is a copy.
func Vocabulary() []string {
	names := make([]string, len(vocabulary))
	for i, e := range vocabulary {
		names[i] = e.name
	}
	return names
}

// IsVocabulary reports whether name is a canonical vocabulary name.
func IsVocabulary(name string) bool {
	_, ok := vocabIndex[name]
	return ok
}

// GroupOf returns the group of a vocabulary name.
func GroupOf(name string) (Group, bool) {
	i, ok := vocabIndex[name]
	if !ok {
		return 0, false
	}
	return vocabulary[i].group, true
}

// IsReserved reports whether a vocabulary name has no typed Element field.
// A name is reserved when its field form is a Go keyword ("for", "type");
// such names are read and written through Element.Attrs only.
func IsReserved(name string) bool {
	return IsVocabulary(name) && token.IsKeyword(FieldForm(name))
}

// FieldForm converts a canonical (hyphenated) name to its field form
// (underscored): "hx-push-url" becomes "hx_push_url".
func FieldForm(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// CanonicalForm converts a field form name back to its canonical form.
func CanonicalForm(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}
