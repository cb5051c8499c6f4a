package colormodel

import (
	"fmt"
	"strings"
)

// ExportFormat selects the text form of an exported shade scale.
type ExportFormat string

const (
	ExportCSS      ExportFormat = "css"      // custom properties: "--name-50: #rrggbb;"
	ExportJSON     ExportFormat = "json"     // object keyed by weight
	ExportTailwind ExportFormat = "tailwind" // a tailwind.config colors fragment
)

// ParseExportFormat parses an export format name, case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportCSS, ExportJSON, ExportTailwind:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, s)
}

// ExportShades renders shades in format. name prefixes CSS variables and keys the Tailwind entry; it defaults to "color". Keys keep the order of shades.
func ExportShades(name string, shades []Shade, format ExportFormat) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "color"
	}

	var b strings.Builder
	switch format {
	case ExportCSS:
		b.WriteString(":root {\n")
		for _, s := range shades {
			fmt.Fprintf(&b, "  --%s-%d: %s;\n", name, s.Weight, s.Color)
		}
		b.WriteString("}\n")
	case ExportJSON:
		b.WriteString("{\n")
		for i, s := range shades {
			fmt.Fprintf(&b, "  %q: %q", fmt.Sprint(s.Weight), s.Color)
			if i < len(shades)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	case ExportTailwind:
		fmt.Fprintf(&b, "%q: {\n", name)
		for _, s := range shades {
			fmt.Fprintf(&b, "  %d: '%s',\n", s.Weight, s.Color)
		}
		b.WriteString("},\n")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, string(format))
	}
	return b.String(), nil
}
