package render

import "image/color"

// Series palette tuning. The hue phase keeps the first series off pure red,
// and the muted saturation/lightness read better on white chart backgrounds
// than fully saturated primaries.
const (
	paletteHuePhase   = 0.58
	paletteSaturation = 0.62
	paletteLightness  = 0.46
)

// seriesColors creates a palette of visually distinct colors, one per
// series, by walking the hue wheel at fixed saturation and lightness.
func seriesColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := paletteHuePhase + float64(i)/float64(n)
		if hue >= 1 {
			hue--
		}
		r, g, b := hslToRGB(hue, paletteSaturation, paletteLightness)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range).
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
