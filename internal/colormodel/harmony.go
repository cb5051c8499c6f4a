package colormodel

import (
	"fmt"
	"strings"
)

// HarmonyType names a rule for deriving related colors from a base color.
type HarmonyType string

const (
	Complementary      HarmonyType = "complementary"
	Analogous          HarmonyType = "analogous"
	Triadic            HarmonyType = "triadic"
	SplitComplementary HarmonyType = "split-complementary"
	Monochromatic      HarmonyType = "monochromatic"
)

// HarmonyTypes lists every HarmonyType in display order.
var HarmonyTypes = []HarmonyType{Complementary, Analogous, Triadic, SplitComplementary, Monochromatic}

// ParseHarmonyType parses a harmony name, case-insensitively. "split" and "split_complementary" are accepted for SplitComplementary.
func ParseHarmonyType(s string) (HarmonyType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "split", "split_complementary", "splitcomplementary":
		return SplitComplementary, nil
	}
	for _, t := range HarmonyTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHarmony, s)
}

// Harmony saturation and lightness for the rotated colors of every type except Monochromatic. Harmony colors are normalized to these, not derived from the
// base color's own saturation and lightness.
const (
	harmonySaturation = 70
	harmonyLightness  = 50
)

// monochromaticLightness is the lightness sweep of Monochromatic; the base color is inserted in the middle.
var monochromaticLightness = [4]int{30, 50, 70, 90}

// Harmony returns the colors of harmony t for base (parsed leniently). The base itself is included, at a position that depends on t:
//   - Complementary: [base, h+180]
//   - Analogous: [h-30, base, h+30]
//   - Triadic: [base, h+120, h+240]
//   - SplitComplementary: [base, h+150, h+210]
//   - Monochromatic: [l30, l50, base, l70, l90], keeping the base's hue and saturation.
//
// Rotated colors use 70% saturation and 50% lightness.
func Harmony(base Hex, t HarmonyType) ([]Hex, error) {
	b := ParseHex(string(base))
	hsl := b.HSL()

	rotate := func(offset int) Hex {
		return RGBToHex(HSLToRGB(HSL{H: hsl.H + offset, S: harmonySaturation, L: harmonyLightness}))
	}

	switch t {
	case Complementary:
		return []Hex{b, rotate(180)}, nil
	case Analogous:
		return []Hex{rotate(-30), b, rotate(30)}, nil
	case Triadic:
		return []Hex{b, rotate(120), rotate(240)}, nil
	case SplitComplementary:
		return []Hex{b, rotate(150), rotate(210)}, nil
	case Monochromatic:
		out := make([]Hex, 0, len(monochromaticLightness)+1)
		for i, l := range monochromaticLightness {
			if i == len(monochromaticLightness)/2 {
				out = append(out, b)
			}
			out = append(out, RGBToHex(HSLToRGB(HSL{H: hsl.H, S: hsl.S, L: l})))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHarmony, string(t))
}
