// Package colormodel converts colors between HEX, RGB, HSL, HSV and an OKLCH approximation, and derives palettes from them: harmonies, shade scales and WCAG
// contrast results.
//
// The canonical value is Hex, a lowercase "#rrggbb" string. Every other representation is a view derived from it. HSL and HSV components are rounded to integers
// when they are computed, so repeated round-trips through HSL may drift by a unit; Hex -> RGB -> Hex is exact.
//
// Lenient parsing: ParseHex and HexToRGB never fail. Malformed input resolves to black. Callers that need validation use ParseHexStrict.
//
// OKLCH: RGBToOKLCHApprox is not a colorimetric transform. It reuses the HSL decomposition (L = lightness/100, C = saturation/100, H = hue) and is what
// Describe reports as "oklch". RGBToOKLCH is the real conversion and is reported separately.
//
// All functions are pure and safe for concurrent use.
package colormodel
