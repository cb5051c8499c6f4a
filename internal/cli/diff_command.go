package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolbench/toolbench/internal/diff"
)

const (
	formatPretty = "pretty"
	formatSide   = "side"
)

func newDiffCommand(state *cliState) *cobra.Command {
	var (
		mode    string
		format  string
		width   int
		context int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Compare two files by characters, words or lines",
		Long: `Compare two files. Either file may be "-" to read standard input.

Formats:
  pretty  unified diff (lines mode) or inline [-removed-]{+added+} markup
  side    two columns, left and right
  json    the full result, including intra-line changes and stats
  yaml    same as json`,
		Args: withUsageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.config(cmd)
			if err != nil {
				return err
			}

			if mode == "" {
				mode = cfg.Diff.Mode
			}
			m, err := diff.ParseMode(mode)
			if err != nil {
				return usageError{msg: err.Error()}
			}
			switch strings.ToLower(format) {
			case formatPretty, formatSide, formatJSON, formatYAML, "":
			default:
				return usageErrorf("unknown format %q (want pretty, side, json or yaml)", format)
			}
			if args[0] == "-" && args[1] == "-" {
				return usageErrorf("only one side can be read from stdin")
			}

			left, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			right, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			result := diff.Compute(left, right, m)
			out := cmd.OutOrStdout()
			color := colorEnabled(out, noColor)

			switch strings.ToLower(format) {
			case formatPretty, "":
				return writeRendered(out, result.RenderUnified(color, context))
			case formatSide:
				w := width
				if w <= 0 {
					w = outputWidth(out, cfg.Diff.Width)
				}
				return writeRendered(out, result.RenderSideBySide(w, color))
			case formatJSON:
				return writeJSON(out, result)
			case formatYAML:
				return writeYAML(out, result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "characters, words or lines (default from config: lines)")
	cmd.Flags().StringVarP(&format, "format", "f", formatPretty, "pretty, side, json or yaml")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "side-by-side width (default: terminal width, else config)")
	cmd.Flags().IntVarP(&context, "context", "U", 3, "unchanged lines around each change in pretty lines output; negative shows all")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color")
	return cmd
}

// readInput reads path, or in when path is "-". Read failures are exit code 1.
func readInput(in io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(in)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", exitError{code: 1, err: fmt.Errorf("read %s: %w", path, err)}
	}
	return string(b), nil
}

func writeRendered(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
