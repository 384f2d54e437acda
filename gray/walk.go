package gray

import (
	"strings"

	"github.com/beevik/etree"
)

// paintAttributes are rewritten on every element.
var paintAttributes = []string{"fill", "stroke", "color"}

// rewriteTree walks the element and all its descendants depth-first replacing
// recognized color attribute values with their gray equivalents. Values of
// "none" (no paint) and paint server references (url(#id) pointing at
// gradients or patterns) are structural, not chromatic, and pass through
// untouched. The pass mutates attribute values only - no element is added,
// removed or reordered.
//
// Expects inline style attributes to be expanded already, colors still inside
// a style attribute will not be found here.
func rewriteTree(el *etree.Element, conv *converter) {
	for _, name := range paintAttributes {
		if attr := el.SelectAttr(name); attr != nil && convertible(attr.Value) {
			attr.Value = conv.convert(attr.Value)
		}
	}

	// Gradient stop colors are always literal colors, never paint server
	// references, so only the "none" guard applies.
	if el.Tag == "stop" {
		if attr := el.SelectAttr("stop-color"); attr != nil && attr.Value != "none" {
			attr.Value = conv.convert(attr.Value)
		}
	}

	for _, child := range el.ChildElements() {
		rewriteTree(child, conv)
	}
}

// convertible reports whether an attribute value is a literal color rather
// than an explicit "no paint" or a paint server reference.
func convertible(value string) bool {
	return value != "none" && !strings.HasPrefix(value, "url(")
}
