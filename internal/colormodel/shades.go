package colormodel

// Shade is one step of a shade scale.
type Shade struct {
	Weight int `json:"weight" yaml:"weight"`
	Color  Hex `json:"color" yaml:"color"`
}

var (
	shadeWeights   = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}
	shadeLightness = [10]int{95, 90, 80, 70, 60, 50, 40, 30, 20, 10}
)

// Shades returns the 50-900 scale for base (parsed leniently): hue and saturation are kept from base, and lightness goes from 95 (weight 50) down to 10
// (weight 900). The result is ordered by ascending weight.
func Shades(base Hex) []Shade {
	hsl := ParseHex(string(base)).HSL()
	out := make([]Shade, len(shadeWeights))
	for i, w := range shadeWeights {
		out[i] = Shade{
			Weight: w,
			Color:  RGBToHex(HSLToRGB(HSL{H: hsl.H, S: hsl.S, L: shadeLightness[i]})),
		}
	}
	return out
}
