package colormodel

import "math"

// Blend mixes focus into base: weight 0 returns base, 1 returns focus, values in between interpolate each RGB channel linearly. weight is clamped to [0, 1].
func Blend(focus, base Hex, weight float64) Hex {
	f := HexToRGB(focus)
	b := HexToRGB(base)
	weight = math.Max(0, math.Min(1, weight))
	mix := func(fc, bc uint8) uint8 {
		return uint8(math.Round(weight*float64(fc) + (1-weight)*float64(bc)))
	}
	return RGBToHex(RGB{R: mix(f.R, b.R), G: mix(f.G, b.G), B: mix(f.B, b.B)})
}

// IsLight reports whether c reads as a light color (perceived brightness of at least 160 of 255), e.g. to pick dark text on top of it.
func IsLight(c Hex) bool {
	rgb := HexToRGB(c)
	brightness := 0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)
	return brightness >= 160
}
