package ggforce

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/color"
)

// ColorSpace is the space in which colors are blended.
type ColorSpace int

const (
	// CIE L*a*b*. Perceptually uniform, and the default.
	Lab ColorSpace = iota
	// Gamma-encoded sRGB, which matches naive per-channel blending.
	RGB
	// CIE L*C*h°, which blends along the hue wheel.
	HCL
)

func (cs ColorSpace) String() string {
	switch cs {
	case Lab:
		return "lab"
	case RGB:
		return "rgb"
	case HCL:
		return "hcl"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

// ParseColorSpace returns the color space with the given name, as printed by
// [ColorSpace.String]. The empty string selects [Lab].
func ParseColorSpace(name string) (ColorSpace, error) {
	switch name {
	case "", "lab":
		return Lab, nil
	case "rgb":
		return RGB, nil
	case "hcl":
		return HCL, nil
	default:
		return 0, fmt.Errorf("unknown color space %q", name)
	}
}

// Blend interpolates between a and b. It returns a exactly for t <= 0 and b
// exactly for t >= 1.
func (cs ColorSpace) Blend(a, b colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	switch cs {
	case RGB:
		return a.BlendRgb(b, t)
	case HCL:
		return a.BlendHcl(b, t).Clamped()
	default:
		return a.BlendLab(b, t).Clamped()
	}
}

// ParseColor parses a color in hex notation, #rgb or #rrggbb.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// ColorFrom converts a color of any color space into the representation used
// for interpolation. The alpha channel is returned separately; interpolate it
// as a number.
func ColorFrom(c *color.Color) (colorful.Color, float64) {
	cc := c.Convert(color.LinearSRGB)
	return colorful.LinearRgb(
		float64(cc.Values[0]),
		float64(cc.Values[1]),
		float64(cc.Values[2]),
	), float64(cc.Values[3])
}
