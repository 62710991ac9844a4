package hxattrs

import (
	"maps"
	"slices"
)

// Attrs is an attribute bag: a name→value mapping plus a set of omitted
// names that are hidden regardless of the mapping's contents.
//
// Attrs is a value type. Every method that changes it returns a new bag and
// leaves the receiver untouched, so bags can be chained fluently and handed
// to other goroutines without copying:
//
//	base := hxattrs.With("data-foo", "baz")
//	next := base.Set("class", "bar").Omit("id")
//	// base still holds only data-foo
//
// The zero value is an empty bag.
type Attrs struct {
	values map[string]string
	omit   []string
}

// With creates a bag holding a single binding.
func With(name, value string) Attrs {
	return Attrs{values: map[string]string{name: value}}
}

// FromMap creates a bag holding a copy of m.
func FromMap(m map[string]string) Attrs {
	return Attrs{values: maps.Clone(m)}
}

// Set returns a bag with name bound to value. An existing binding is
// replaced.
func (a Attrs) Set(name, value string) Attrs {
	values := maps.Clone(a.values)
	if values == nil {
		values = make(map[string]string, 1)
	}
	values[name] = value
	return Attrs{values: values, omit: a.omit}
}

// SetIf is Set when cond is true and returns a unchanged otherwise.
//
//	attrs.SetIf("href", props.Href, props.Href != "" && tag == "a")
func (a Attrs) SetIf(name, value string, cond bool) Attrs {
	if !cond {
		return a
	}
	return a.Set(name, value)
}

// Omit returns a bag whose omission set is exactly names. Any omission set
// from an earlier Omit call is replaced, not extended; use OmitMore to
// extend it.
func (a Attrs) Omit(names ...string) Attrs {
	return Attrs{values: a.values, omit: slices.Clone(names)}
}

// OmitMore returns a bag whose omission set is the union of the current set
// and names.
func (a Attrs) OmitMore(names ...string) Attrs {
	omit := slices.Clone(a.omit)
	for _, n := range names {
		if !slices.Contains(omit, n) {
			omit = append(omit, n)
		}
	}
	return Attrs{values: a.values, omit: omit}
}

// Get returns the value bound to name. It reports false when name is
// unbound or omitted.
func (a Attrs) Get(name string) (string, bool) {
	if slices.Contains(a.omit, name) {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

// Map returns the bag's bindings minus omitted names. The map is a fresh
// copy owned by the caller.
func (a Attrs) Map() map[string]string {
	m := make(map[string]string, len(a.values))
	for k, v := range a.values {
		if slices.Contains(a.omit, k) {
			continue
		}
		m[k] = v
	}
	return m
}

// MapExcluding returns Map() minus the given names.
func (a Attrs) MapExcluding(names ...string) map[string]string {
	m := a.Map()
	for _, n := range names {
		delete(m, n)
	}
	return m
}

// Merge returns a bag holding the bindings of both bags, with other's
// bindings winning on conflict. Omission sets are unioned.
func (a Attrs) Merge(other Attrs) Attrs {
	values := make(map[string]string, len(a.values)+len(other.values))
	maps.Copy(values, a.values)
	maps.Copy(values, other.values)
	merged := Attrs{values: values, omit: slices.Clone(a.omit)}
	return merged.OmitMore(other.omit...)
}

// Omitted returns a copy of the omission set.
func (a Attrs) Omitted() []string {
	return slices.Clone(a.omit)
}

// Len returns the number of visible bindings.
func (a Attrs) Len() int {
	n := 0
	for k := range a.values {
		if !slices.Contains(a.omit, k) {
			n++
		}
	}
	return n
}

// String serializes the visible bindings. See Render.
func (a Attrs) String() string {
	return Render(a.Map())
}
