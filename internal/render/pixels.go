package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// fillRGBA paints every pixel of an RGBA buffer with col.
func fillRGBA(buf []byte, col color.RGBA) {
	if len(buf) < 4 {
		return
	}
	buf[0] = col.R
	buf[1] = col.G
	buf[2] = col.B
	buf[3] = col.A
	for filled := 4; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// HueColor returns an opaque color for hue h in [0, 1) at the given
// saturation and value. Hues outside the range wrap.
func HueColor(h, s, v float64) color.RGBA {
	h -= math.Floor(h)
	r, g, b := colorful.Hsv(h*360, clamp01(s), clamp01(v)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
