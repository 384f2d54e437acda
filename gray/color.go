package gray

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"svgray/config"
)

// Options describe a single document conversion.
type Options struct {
	// Method selects between HSL desaturation and BT.601 luminance mapping.
	Method config.GrayMethod
	// Strength is the amount of desaturation 0-100. Honored by the lightness
	// method only, luminance conversion is always full.
	Strength int
}

// cacheKey identifies one memoized conversion result. Identical color strings
// recur many times in documents with flat palettes, so results are cached for
// the duration of one document conversion.
type cacheKey struct {
	value    string
	strength int
	method   config.GrayMethod
}

// converter rewrites individual color values to their gray equivalents. One
// instance (and therefore one cache) exists per document conversion, it is
// not safe for concurrent use.
type converter struct {
	opts  Options
	cache map[cacheKey]string
}

func newConverter(opts Options) *converter {
	return &converter{
		opts:  opts,
		cache: make(map[cacheKey]string),
	}
}

// convert maps a single color value to gray preserving its alpha channel.
// Values that do not parse as colors (inherited keywords, malformed data) are
// returned unchanged - a bad value must never block conversion of the rest of
// the document. The caller is expected to filter out paint server references
// and "none" before calling.
func (c *converter) convert(value string) string {
	key := cacheKey{value: value, strength: c.opts.Strength, method: c.opts.Method}
	if cached, ok := c.cache[key]; ok {
		return cached
	}

	col, err := csscolorparser.Parse(value)
	if err != nil {
		// not a color, leave as is
		return value
	}

	var r, g, b uint8
	switch c.opts.Method {
	case config.GrayMethodLuminance:
		r, g, b = luminanceGray(col)
	default:
		r, g, b = lightnessGray(col, c.opts.Strength)
	}

	result := formatHex(r, g, b, col.A)
	c.cache[key] = result
	return result
}

// luminanceGray collapses RGB channels to the BT.601 weighted brightness
// Y = 0.299R + 0.587G + 0.114B computed on [0,255] channels.
func luminanceGray(col csscolorparser.Color) (uint8, uint8, uint8) {
	r, g, b, _ := col.RGBA255()
	y := math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
	v := uint8(y)
	return v, v, v
}

// lightnessGray reduces saturation in HSL space by strength percent keeping
// hue and lightness intact. Strength 100 zeroes saturation completely.
func lightnessGray(col csscolorparser.Color, strength int) (uint8, uint8, uint8) {
	h, s, l := colorful.Color{R: col.R, G: col.G, B: col.B}.Hsl()
	s *= float64(100-strength) / 100.0
	return colorful.Hsl(h, s, l).Clamped().RGB255()
}

// formatHex renders a gray triple as a lowercase hex string. The alpha
// component is included (8 hex digits) only when the carried over alpha is not
// fully opaque, matching the most common SVG authoring convention.
func formatHex(r, g, b uint8, alpha float64) string {
	a := uint8(math.Round(alpha * 255))
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}
