package colormodel

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToHSL converts c to HSL, rounding each component to an integer.
func RGBToHSL(c RGB) HSL {
	r, g, b := channels(c)
	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: roundInt(l * 100)}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}
	return HSL{H: normalizeHue(roundInt(hue(r, g, b, hi, d) * 360)), S: roundInt(s * 100), L: roundInt(l * 100)}
}

// HSLToRGB converts c to RGB. Hue is taken modulo 360; saturation and lightness are clamped to 0-100.
func HSLToRGB(c HSL) RGB {
	h := float64(normalizeHue(c.H)) / 360
	s := float64(clamp(c.S, 0, 100)) / 100
	l := float64(clamp(c.L, 0, 100)) / 100

	if s == 0 {
		v := roundChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: roundChannel(hueToRGB(p, q, h+1.0/3)),
		G: roundChannel(hueToRGB(p, q, h)),
		B: roundChannel(hueToRGB(p, q, h-1.0/3)),
	}
}

// RGBToHSV converts c to HSV, rounding each component to an integer.
func RGBToHSV(c RGB) HSV {
	r, g, b := channels(c)
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo

	var s float64
	if hi != 0 {
		s = d / hi
	}
	var h float64
	if d != 0 {
		h = hue(r, g, b, hi, d)
	}
	return HSV{H: normalizeHue(roundInt(h * 360)), S: roundInt(s * 100), V: roundInt(hi * 100)}
}

// HSVToRGB converts c to RGB. Hue is taken modulo 360; saturation and value are clamped to 0-100.
func HSVToRGB(c HSV) RGB {
	h := float64(normalizeHue(c.H)) / 60
	s := float64(clamp(c.S, 0, 100)) / 100
	v := float64(clamp(c.V, 0, 100)) / 100

	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: roundChannel(r), G: roundChannel(g), B: roundChannel(b)}
}

// RGBToOKLCHApprox returns the OKLCH stand-in derived from HSL: L = lightness/100, C = saturation/100, H = hue. It is not a colorimetric conversion; use
// RGBToOKLCH for that. Displays that label this value "OKLCH" rely on this exact mapping.
func RGBToOKLCHApprox(c RGB) OKLCH {
	hsl := RGBToHSL(c)
	return OKLCH{L: float64(hsl.L) / 100, C: float64(hsl.S) / 100, H: float64(hsl.H)}
}

// achromaticChroma is the chroma below which a color counts as gray. The Oklab matrices leave neutral grays with a chroma of about 1e-4, and the hue
// of that residue is noise. One 8-bit step off gray already gives well over 1e-3.
const achromaticChroma = 5e-4

// RGBToOKLCH converts c to OKLCH (Björn Ottosson's Oklab in polar form). Components are rounded to 4 decimals (L, C) and 2 decimals (H).
func RGBToOKLCH(c RGB) OKLCH {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, ch, h := col.OkLch()
	if ch < achromaticChroma {
		ch, h = 0, 0
	}
	return OKLCH{L: roundTo(l, 4), C: roundTo(ch, 4), H: roundTo(h, 2)}
}

func channels(c RGB) (float64, float64, float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// hue returns the hue in [0, 1) given the channels, their maximum hi and the spread d (d != 0).
func hue(r, g, b, hi, d float64) float64 {
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// normalizeHue maps any integer hue into [0, 360).
func normalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func roundInt(x float64) int {
	return int(math.Round(x))
}

func roundChannel(x float64) uint8 {
	return uint8(clamp(roundInt(x*255), 0, 255))
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
