package gray

import (
	"testing"

	"github.com/beevik/etree"
)

func TestExpandStyles_PromotesColorProperties(t *testing.T) {
	el := etree.NewElement("rect")
	el.CreateAttr("style", "fill:#ff0000;stroke:#00ff00;unknown-prop:foo")

	expandStyles(el)

	if got := el.SelectAttrValue("fill", ""); got != "#ff0000" {
		t.Errorf("fill = %q, want #ff0000", got)
	}
	if got := el.SelectAttrValue("stroke", ""); got != "#00ff00" {
		t.Errorf("stroke = %q, want #00ff00", got)
	}
	if el.SelectAttr("unknown-prop") != nil {
		t.Error("unknown-prop was copied, want dropped")
	}
	if el.SelectAttr("style") != nil {
		t.Error("style attribute still present after expansion")
	}
}

func TestExpandStyles_StyleWinsOverAttribute(t *testing.T) {
	el := etree.NewElement("circle")
	el.CreateAttr("fill", "#0000ff")
	el.CreateAttr("style", "fill: #ff0000")

	expandStyles(el)

	if got := el.SelectAttrValue("fill", ""); got != "#ff0000" {
		t.Errorf("fill = %q, want style declaration to win", got)
	}
}

func TestExpandStyles_WhitespaceAndStopColor(t *testing.T) {
	el := etree.NewElement("stop")
	el.CreateAttr("style", " stop-color : #abcdef ; color:green ")

	expandStyles(el)

	if got := el.SelectAttrValue("stop-color", ""); got != "#abcdef" {
		t.Errorf("stop-color = %q, want #abcdef", got)
	}
	if got := el.SelectAttrValue("color", ""); got != "green" {
		t.Errorf("color = %q, want green", got)
	}
}

func TestExpandStyles_KeepsPaintServerReference(t *testing.T) {
	el := etree.NewElement("path")
	el.CreateAttr("style", "fill:url(#grad)")

	expandStyles(el)

	if got := el.SelectAttrValue("fill", ""); got != "url(#grad)" {
		t.Errorf("fill = %q, want url(#grad)", got)
	}
}

func TestExpandStyles_Recurses(t *testing.T) {
	root := etree.NewElement("g")
	root.CreateAttr("style", "fill:#111111")
	child := root.CreateElement("rect")
	child.CreateAttr("style", "stroke:#222222")
	grandchild := child.CreateElement("circle")
	grandchild.CreateAttr("style", "color:#333333")

	expandStyles(root)

	if got := root.SelectAttrValue("fill", ""); got != "#111111" {
		t.Errorf("root fill = %q, want #111111", got)
	}
	if got := child.SelectAttrValue("stroke", ""); got != "#222222" {
		t.Errorf("child stroke = %q, want #222222", got)
	}
	if got := grandchild.SelectAttrValue("color", ""); got != "#333333" {
		t.Errorf("grandchild color = %q, want #333333", got)
	}
	for _, el := range []*etree.Element{root, child, grandchild} {
		if el.SelectAttr("style") != nil {
			t.Errorf("style attribute left on %s", el.Tag)
		}
	}
}

func TestExpandStyles_Idempotent(t *testing.T) {
	el := etree.NewElement("rect")
	el.CreateAttr("style", "fill:#ff0000")

	expandStyles(el)
	attrsAfterFirst := len(el.Attr)
	fill := el.SelectAttrValue("fill", "")

	expandStyles(el)
	if len(el.Attr) != attrsAfterFirst {
		t.Errorf("second expansion changed attribute count: %d -> %d", attrsAfterFirst, len(el.Attr))
	}
	if got := el.SelectAttrValue("fill", ""); got != fill {
		t.Errorf("second expansion changed fill: %q -> %q", fill, got)
	}
}

func TestStyleDeclarations_FunctionValue(t *testing.T) {
	// tokenizer drops whitespace inside function values, the compact spelling
	// is what downstream color parsing sees
	decls := styleDeclarations("fill: rgb(255, 0, 0); stroke:none")

	if got := decls["fill"]; got != "rgb(255,0,0)" {
		t.Errorf("fill declaration = %q, want rgb(255,0,0)", got)
	}
	if got := decls["stroke"]; got != "none" {
		t.Errorf("stroke declaration = %q, want none", got)
	}

	// both spellings must convert identically
	conv := newConverter(Options{Strength: 100})
	if spaced, compact := conv.convert("rgb(255, 0, 0)"), conv.convert("rgb(255,0,0)"); spaced != compact {
		t.Errorf("function value spellings diverge after conversion: %q vs %q", spaced, compact)
	}
}
