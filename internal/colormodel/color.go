package colormodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex is a color in canonical "#rrggbb" form (lowercase, no alpha). Values produced by this package are always canonical.
type Hex string

// Black is the color malformed input resolves to.
const Black Hex = "#000000"

// RGB is a color as 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL is hue (0-360), saturation (0-100) and lightness (0-100), as integers.
type HSL struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	L int `json:"l" yaml:"l"`
}

// HSV is hue (0-360), saturation (0-100) and value (0-100), as integers.
type HSV struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	V int `json:"v" yaml:"v"`
}

// OKLCH is lightness (0-1), chroma and hue (degrees).
type OKLCH struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// ParseHex returns the canonical form of s ("#rrggbb", '#' optional, any case). Anything else yields Black.
func ParseHex(s string) Hex {
	rgb, ok := parseHex6(s)
	if !ok {
		return Black
	}
	return RGBToHex(rgb)
}

// ParseHexStrict is like ParseHex but also accepts 3-digit shorthand ("#abc") and surrounding whitespace, and returns ErrInvalidHex instead of falling back to
// Black.
func ParseHexStrict(s string) (Hex, error) {
	trimmed := strings.TrimSpace(s)
	digits := strings.TrimPrefix(trimmed, "#")
	if len(digits) == 3 && isHexDigits(digits) {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	rgb, ok := parseHex6(digits)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGBToHex(rgb), nil
}

// HexToRGB returns the channels of h. Malformed input yields RGB{0, 0, 0}.
func HexToRGB(h Hex) RGB {
	rgb, _ := parseHex6(string(h))
	return rgb
}

// RGBToHex returns the canonical hex form of c.
func RGBToHex(c RGB) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// RGB returns the channels of h (see HexToRGB).
func (h Hex) RGB() RGB {
	return HexToRGB(h)
}

// HSL returns h in HSL.
func (h Hex) HSL() HSL {
	return RGBToHSL(HexToRGB(h))
}

// parseHex6 parses exactly six hex digits with an optional leading '#'.
func parseHex6(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 || !isHexDigits(s) {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
