package config

// GrayMethod selects the grayscale conversion method. Lightness
// desaturates in HSL space keeping perceptual lightness intact, luminance
// collapses RGB channels to the BT.601 weighted brightness.
// ENUM(lightness, luminance)
type GrayMethod int

// UsesStrength reports whether the method honors the desaturation strength
// parameter. The luminance method is always a full conversion.
func (m GrayMethod) UsesStrength() bool {
	return m == GrayMethodLightness
}
