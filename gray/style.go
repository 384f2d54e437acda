package gray

import (
	"strings"

	"github.com/beevik/etree"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Inline style expansion. Color properties buried in style attributes are
// promoted to first-class element attributes so the tree rewrite pass has a
// single place to look. Presentation properties that do not carry color are
// dropped - only color matters here and keeping the style attribute around
// would leave a second, uninspected source of paint.

// colorProperties are the declaration names promoted to direct attributes.
var colorProperties = map[string]struct{}{
	"fill":       {},
	"stroke":     {},
	"color":      {},
	"stop-color": {},
}

// expandStyles walks the element and all its descendants promoting recognized
// declarations of every style attribute to direct attributes (style wins over
// a pre-existing attribute of the same name) and removing the style attribute
// itself. Running it on an already expanded tree is a no-op.
func expandStyles(el *etree.Element) {
	if attr := el.SelectAttr("style"); attr != nil {
		for prop, value := range styleDeclarations(attr.Value) {
			if _, ok := colorProperties[prop]; ok {
				el.CreateAttr(prop, value)
			}
		}
		el.RemoveAttr("style")
	}

	for _, child := range el.ChildElements() {
		expandStyles(child)
	}
}

// styleDeclarations tokenizes an inline declaration list ("prop: value;...")
// into a property to value map. Property names are lowercased, values keep
// their original spelling. Anything the tokenizer cannot make sense of is
// skipped silently.
func styleDeclarations(style string) map[string]string {
	decls := make(map[string]string)

	p := css.NewParser(parse.NewInput(strings.NewReader(style)), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return decls
		case css.DeclarationGrammar:
			if value := tokensValue(p.Values()); value != "" {
				decls[strings.ToLower(string(data))] = value
			}
		}
	}
}

// tokensValue reassembles a declaration value from CSS tokens. Whitespace
// runs between top level tokens collapse to single spaces, whitespace inside
// function values is not tokenized and comes back compacted ("rgb(255,0,0)").
func tokensValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
