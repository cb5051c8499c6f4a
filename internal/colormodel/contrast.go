package colormodel

import "math"

// WCAG 2 contrast thresholds.
const (
	AANormalThreshold  = 4.5
	AALargeThreshold   = 3.0
	AAANormalThreshold = 7.0
	AAALargeThreshold  = 4.5
)

// Conformance reports whether a contrast ratio passes a WCAG level for normal and large text.
type Conformance struct {
	Normal bool `json:"normal" yaml:"normal"`
	Large  bool `json:"large" yaml:"large"`
}

// ContrastResult is the WCAG evaluation of a color pair.
type ContrastResult struct {
	Ratio float64     `json:"ratio" yaml:"ratio"`
	AA    Conformance `json:"aa" yaml:"aa"`
	AAA   Conformance `json:"aaa" yaml:"aaa"`
}

// RelativeLuminance returns the WCAG relative luminance of c, in [0, 1].
func RelativeLuminance(c RGB) float64 {
	r, g, b := channels(c)
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize undoes sRGB gamma using the WCAG 2 constants (0.03928 breakpoint, 2.4 exponent).
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b (order doesn't matter), from 1 to 21. Malformed input is treated as black.
func ContrastRatio(a, b Hex) float64 {
	la := RelativeLuminance(HexToRGB(a))
	lb := RelativeLuminance(HexToRGB(b))
	lighter, darker := max(la, lb), min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// Contrast evaluates a and b against the WCAG AA and AAA thresholds. Ratio is rounded to 2 decimals for display; the pass/fail flags use the unrounded ratio.
func Contrast(a, b Hex) ContrastResult {
	ratio := ContrastRatio(a, b)
	return ContrastResult{
		Ratio: roundTo(ratio, 2),
		AA:    Conformance{Normal: ratio >= AANormalThreshold, Large: ratio >= AALargeThreshold},
		AAA:   Conformance{Normal: ratio >= AAANormalThreshold, Large: ratio >= AAALargeThreshold},
	}
}
