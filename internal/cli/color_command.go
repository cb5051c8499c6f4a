package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/toolbench/toolbench/internal/colormodel"
)

func newColorCommand(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert colors and derive palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown subcommand: %s", args[0])
			}
			return usageErrorf("missing required subcommand")
		},
	}

	var (
		format  string
		strict  bool
		noColor bool
	)
	cmd.PersistentFlags().StringVarP(&format, "format", "f", formatText, "text, json or yaml")
	cmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject malformed colors instead of treating them as black")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color swatches")

	// parse parses a color argument per --strict. Malformed colors in strict mode are exit code 1.
	parse := func(s string) (colormodel.Hex, error) {
		if !strict {
			return colormodel.ParseHex(s), nil
		}
		h, err := colormodel.ParseHexStrict(s)
		if err != nil {
			return "", exitError{code: 1, err: err}
		}
		return h, nil
	}
	swatches := func(cmd *cobra.Command) *swatcher {
		return newSwatcher(cmd.OutOrStdout(), colorEnabled(cmd.OutOrStdout(), noColor))
	}

	convert := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color as HEX, RGB, HSL, HSV and OKLCH",
		Args:  withUsageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := state.config(cmd); err != nil {
				return err
			}
			c, err := parse(args[0])
			if err != nil {
				return err
			}
			f := colormodel.Describe(c)
			sw := swatches(cmd)
			return writeFormatted(cmd.OutOrStdout(), format, f, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "hex    %s%s\n", f.Hex, sw.render(f.Hex))
				fmt.Fprintf(&b, "rgb    %s\n", f.CSSRGB)
				fmt.Fprintf(&b, "hsl    %s\n", f.CSSHSL)
				fmt.Fprintf(&b, "hsv    %s\n", f.CSSHSV)
				fmt.Fprintf(&b, "oklch  %s\n", f.CSSOKLCH)
				fmt.Fprintf(&b, "oklch* oklch(%g %g %g)\n", f.TrueOKLCH.L, f.TrueOKLCH.C, f.TrueOKLCH.H)
				return b.String()
			})
		},
	}

	var harmonyType string
	harmony := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Generate a color harmony",
		Long:  "Generate a color harmony. Types: " + joinHarmonyTypes() + ".",
		Args:  withUsageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := state.config(cmd); err != nil {
				return err
			}
			typ, err := colormodel.ParseHarmonyType(harmonyType)
			if err != nil {
				return usageError{msg: err.Error()}
			}
			c, err := parse(args[0])
			if err != nil {
				return err
			}
			colors, err := colormodel.Harmony(c, typ)
			if err != nil {
				return err
			}
			v := struct {
				Type   colormodel.HarmonyType `json:"type" yaml:"type"`
				Colors []colormodel.Hex       `json:"colors" yaml:"colors"`
			}{typ, colors}
			sw := swatches(cmd)
			return writeFormatted(cmd.OutOrStdout(), format, v, func() string {
				var b strings.Builder
				for _, h := range colors {
					fmt.Fprintf(&b, "%s%s\n", h, sw.render(h))
				}
				return b.String()
			})
		},
	}
	harmony.Flags().StringVarP(&harmonyType, "type", "t", string(colormodel.Complementary), joinHarmonyTypes())

	var export, name string
	shades := &cobra.Command{
		Use:   "shades <color>",
		Short: "Generate the 50-900 shade scale",
		Args:  withUsageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := state.config(cmd); err != nil {
				return err
			}
			c, err := parse(args[0])
			if err != nil {
				return err
			}
			scale := colormodel.Shades(c)
			if export != "" {
				ef, err := colormodel.ParseExportFormat(export)
				if err != nil {
					return usageError{msg: err.Error()}
				}
				s, err := colormodel.ExportShades(name, scale, ef)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), s)
				return err
			}
			sw := swatches(cmd)
			return writeFormatted(cmd.OutOrStdout(), format, scale, func() string {
				var b strings.Builder
				for _, s := range scale {
					fmt.Fprintf(&b, "%3d %s%s\n", s.Weight, s.Color, sw.render(s.Color))
				}
				return b.String()
			})
		},
	}
	shades.Flags().StringVar(&export, "export", "", "css, json or tailwind; overrides --format")
	shades.Flags().StringVar(&name, "name", "primary", "name for exported variables")

	contrast := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Args:  withUsageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := state.config(cmd); err != nil {
				return err
			}
			fg, err := parse(args[0])
			if err != nil {
				return err
			}
			bg, err := parse(args[1])
			if err != nil {
				return err
			}
			res := colormodel.Contrast(fg, bg)
			sw := swatches(cmd)
			return writeFormatted(cmd.OutOrStdout(), format, res, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "ratio  %.2f:1%s\n", res.Ratio, sw.sample(fg, bg))
				fmt.Fprintf(&b, "AA     normal %s  large %s\n", passFail(res.AA.Normal), passFail(res.AA.Large))
				fmt.Fprintf(&b, "AAA    normal %s  large %s\n", passFail(res.AAA.Normal), passFail(res.AAA.Large))
				return b.String()
			})
		},
	}

	cmd.AddCommand(convert, harmony, shades, contrast)
	return cmd
}

func joinHarmonyTypes() string {
	names := make([]string, len(colormodel.HarmonyTypes))
	for i, t := range colormodel.HarmonyTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

// swatcher renders color samples with lipgloss. When disabled, samples are empty.
type swatcher struct {
	r       *lipgloss.Renderer
	enabled bool
}

func newSwatcher(w io.Writer, enabled bool) *swatcher {
	return &swatcher{r: lipgloss.NewRenderer(w), enabled: enabled}
}

// render returns a space and a block filled with c.
func (s *swatcher) render(c colormodel.Hex) string {
	if !s.enabled {
		return ""
	}
	return " " + s.r.NewStyle().Background(lipgloss.Color(string(c))).Render("      ")
}

// sample returns a space and "Aa" in fg on bg.
func (s *swatcher) sample(fg, bg colormodel.Hex) string {
	if !s.enabled {
		return ""
	}
	return " " + s.r.NewStyle().
		Foreground(lipgloss.Color(string(fg))).
		Background(lipgloss.Color(string(bg))).
		Padding(0, 1).
		Render("Aa")
}
