package hxattrs

import "strings"

//go:generate go run ./cmd/hxattrs element -o element_gen.go -p hxattrs

// Concat joins an explicit field value and a bag value for the same
// attribute. Both sides are trimmed; when both are non-empty the result is
// field + " " + bag, otherwise the non-empty side, otherwise "".
func Concat(field, bag string) string {
	field = strings.TrimSpace(field)
	bag = strings.TrimSpace(bag)
	switch {
	case field != "" && bag != "":
		return field + " " + bag
	case field != "":
		return field
	default:
		return bag
	}
}

// Spread composes the element's typed fields and its bag into a canonical
// attribute set, leaving out every name in omit.
//
// For each vocabulary name not omitted, the typed field and the bag value
// are joined with Concat. Reserved names (for, type) have no typed field and
// are copied from the bag as is. Bag entries outside the vocabulary pass
// through unchanged, except names that differ from a vocabulary name only
// in case ("Class", "HX-GET"): HTML names are case-insensitive, so those
// would duplicate the vocabulary attribute and are dropped. Empty values
// never reach the result.
//
// The returned bag has no omission set; its Map is the canonical set.
func (e Element) Spread(omit OmitList) Attrs {
	values := make(map[string]string, len(vocabulary))

	for _, entry := range vocabulary {
		name := entry.name
		if omit.Has(name) {
			continue
		}
		bagValue, _ := e.Attrs.Get(name)

		field := e.field(name)
		if field == nil {
			if bagValue != "" {
				values[name] = bagValue
			}
			continue
		}
		if v := Concat(*field, bagValue); v != "" {
			values[name] = v
		}
	}

	for name, v := range e.Attrs.Map() {
		if v == "" || IsVocabulary(strings.ToLower(name)) || omit.Has(name) {
			continue
		}
		values[name] = v
	}

	return Attrs{values: values}
}

// ToAttrs converts the element into a bag with nothing omitted.
func (e Element) ToAttrs() Attrs {
	return e.Spread(OmitList{})
}

// Field returns the typed field value for a canonical vocabulary name. It
// reports false for reserved and unknown names.
func (e Element) Field(name string) (string, bool) {
	p := e.field(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetField sets the typed field for a canonical or field form name. It
// reports false, leaving e unchanged, for reserved and unknown names.
func (e *Element) SetField(name, value string) bool {
	p := e.field(CanonicalForm(name))
	if p == nil {
		return false
	}
	*p = value
	return true
}
