package colormodel

import (
	"fmt"
	"strconv"
)

// Formats is every representation of one color, with CSS-style strings for display.
type Formats struct {
	Hex   Hex   `json:"hex" yaml:"hex"`
	RGB   RGB   `json:"rgb" yaml:"rgb"`
	HSL   HSL   `json:"hsl" yaml:"hsl"`
	HSV   HSV   `json:"hsv" yaml:"hsv"`
	OKLCH OKLCH `json:"oklch" yaml:"oklch"` // the approximation (see RGBToOKLCHApprox)

	// TrueOKLCH is the colorimetric OKLCH (see RGBToOKLCH).
	TrueOKLCH OKLCH `json:"trueOklch" yaml:"trueOklch"`

	CSSRGB   string `json:"cssRgb" yaml:"cssRgb"`     // rgb(r, g, b)
	CSSHSL   string `json:"cssHsl" yaml:"cssHsl"`     // hsl(h, s%, l%)
	CSSHSV   string `json:"cssHsv" yaml:"cssHsv"`     // hsv(h, s%, v%)
	CSSOKLCH string `json:"cssOklch" yaml:"cssOklch"` // oklch(l c h), from the approximation

	IsLight   bool    `json:"isLight" yaml:"isLight"`
	TextOnTop Hex     `json:"textOnTop" yaml:"textOnTop"` // black or white, whichever contrasts more
	Luminance float64 `json:"luminance" yaml:"luminance"` // WCAG relative luminance, 4 decimals
}

// Describe returns every representation of c (parsed leniently).
func Describe(c Hex) Formats {
	h := ParseHex(string(c))
	rgb := HexToRGB(h)
	hsl := RGBToHSL(rgb)
	hsv := RGBToHSV(rgb)
	approx := RGBToOKLCHApprox(rgb)

	text := Hex("#ffffff")
	if ContrastRatio(h, Black) > ContrastRatio(h, "#ffffff") {
		text = Black
	}

	return Formats{
		Hex:       h,
		RGB:       rgb,
		HSL:       hsl,
		HSV:       hsv,
		OKLCH:     approx,
		TrueOKLCH: RGBToOKLCH(rgb),
		CSSRGB:    fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B),
		CSSHSL:    fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L),
		CSSHSV:    fmt.Sprintf("hsv(%d, %d%%, %d%%)", hsv.H, hsv.S, hsv.V),
		CSSOKLCH:  "oklch(" + formatFloat(approx.L) + " " + formatFloat(approx.C) + " " + formatFloat(approx.H) + ")",
		IsLight:   IsLight(h),
		TextOnTop: text,
		Luminance: roundTo(RelativeLuminance(rgb), 4),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
