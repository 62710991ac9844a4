// Package components holds server-rendered templ components built on
// hxattrs. Each props struct embeds hxattrs.Element, so callers can set any
// vocabulary attribute (ids, ARIA, hx-*) on the component's root element
// while the component keeps control of the attributes it renders itself.
//
// Components read their children from the templ context, so they nest in
// templ files like any other component:
//
//	@components.PrimaryButton(components.ButtonProps{Size: components.ButtonLg}) {
//		Save
//	}
package components
