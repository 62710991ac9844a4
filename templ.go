package hxattrs

import (
	"fmt"

	"github.com/a-h/templ"
)

// Templ converts the bag's visible, non-empty bindings into templ
// attributes, for spreading onto an element in a templ template:
//
//	<button { props.SpreadAttrs().Templ()... }>
//
// templ escapes the values when it renders them.
func (a Attrs) Templ() templ.Attributes {
	attrs := make(templ.Attributes, len(a.values))
	for k, v := range a.Map() {
		if v == "" {
			continue
		}
		attrs[k] = v
	}
	return attrs
}

// FromTempl creates a bag from templ attributes. String values are copied;
// true booleans become "true" and false ones are dropped; other values are
// formatted with fmt.Sprint.
func FromTempl(attrs templ.Attributes) Attrs {
	values := make(map[string]string, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			values[k] = val
		case bool:
			if val {
				values[k] = "true"
			}
		case nil:
		default:
			values[k] = fmt.Sprint(val)
		}
	}
	return Attrs{values: values}
}
