// Package hxattrs composes HTML attributes for server-rendered components
// built with Go, templ and htmx.
//
// A component rarely owns all of its attributes. Some it computes itself (a
// button's size classes), some its caller sets explicitly (an id, an
// hx-get), and some arrive from further up the tree as a loose bag (data-*
// hooks, extra classes). hxattrs merges those sources deterministically and
// renders the result as a stable, escaped attribute string.
//
// # Vocabulary
//
// A closed, versioned vocabulary names the attributes every component
// accepts: identity and styling (id, class, name), ARIA, interaction
// (onclick, tabindex, value, ...) and the htmx hx-* attributes. See
// Vocabulary and VocabularyVersion.
//
// # Element and Attrs
//
// Props structs embed Element to gain one typed field per vocabulary name
// plus an Attrs bag for anything else:
//
//	type ButtonProps struct {
//	    hxattrs.Element `hxattrs:"omit=class"`
//	    Size ButtonSize
//	}
//
//	props := ButtonProps{Size: Large}
//	props.ID = "save"
//	props.HxPost = "/save"
//	props.Attrs = hxattrs.With("data-track", "save-button")
//
// Attrs is an immutable bag: Set, SetIf, Omit and Merge return new bags.
// The reserved names for and type have no typed field (they are Go
// keywords) and are set through the bag.
//
// # Composition
//
// Element.Spread merges typed fields and bag values per name. When both
// are set they are joined with a single space, field first, so a component
// can add classes to the ones its caller passed. Names in the OmitList are
// left out entirely; the component renders them itself. Names outside the
// vocabulary pass through unchanged.
//
//	var buttonOmit = hxattrs.MustOmit("class")
//
//	attrs := props.Element.Spread(buttonOmit).Set("type", "button")
//
// OmitList values are validated against the vocabulary when they are
// built; MustOmit in a package-level var fails at init. The hxattrs
// generator checks `hxattrs:"omit=..."` struct tags before any code runs
// and writes the SpreadAttrs method for each props type.
//
// # Rendering
//
// Render (and Attrs.String) writes name="value" pairs in ascending name
// order, skipping empty values. Values are always HTML-escaped. Attrs also
// converts to templ.Attributes for templ's spread syntax, encodes
// canonically with msgpack, and can be sealed into an hx-vals token with
// Seal so a finished bag survives an htmx round trip.
//
// All operations are pure. Bags can be shared between goroutines rendering
// sibling fragments without locking.
package hxattrs
