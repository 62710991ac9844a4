package hxattrs

import "slices"

// OmitList is a validated set of vocabulary names a component computes
// itself and therefore excludes from automatic population in
// Element.Spread. The zero value omits nothing.
type OmitList struct {
	names []string
}

// NewOmitList validates names against the vocabulary. Names may be given in
// canonical ("aria-labelledby") or field form ("aria_labelledby"). The first
// name outside the vocabulary is reported as a *SchemaError and no list is
// built.
func NewOmitList(names ...string) (OmitList, error) {
	list := OmitList{names: make([]string, 0, len(names))}
	for _, n := range names {
		canonical := CanonicalForm(n)
		if !IsVocabulary(canonical) {
			return OmitList{}, &SchemaError{Name: n}
		}
		if !slices.Contains(list.names, canonical) {
			list.names = append(list.names, canonical)
		}
	}
	return list, nil
}

// MustOmit is like NewOmitList but panics on a schema error. It is meant
// for package-level variables so a bad directive fails at init:
//
//	var buttonOmit = hxattrs.MustOmit("class")
func MustOmit(names ...string) OmitList {
	list, err := NewOmitList(names...)
	if err != nil {
		panic(err)
	}
	return list
}

// Has reports whether the canonical name is omitted.
func (o OmitList) Has(name string) bool {
	return slices.Contains(o.names, name)
}

// Names returns the omitted canonical names in declaration order.
func (o OmitList) Names() []string {
	return slices.Clone(o.names)
}

// Len returns the number of omitted names.
func (o OmitList) Len() int {
	return len(o.names)
}
