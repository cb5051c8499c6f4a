package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats shared by the color commands. The diff command adds its own renderings on top of json and yaml.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeFormatted writes v as json or yaml, or calls text for the text format.
func writeFormatted(w io.Writer, format string, v any, text func() string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		return writeJSON(w, v)
	case formatYAML:
		return writeYAML(w, v)
	case formatText, "":
		_, err := io.WriteString(w, text())
		return err
	}
	return usageErrorf("unknown format %q (want text, json or yaml)", format)
}

// terminalFd returns the file descriptor of w if it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// colorEnabled reports whether ANSI color should be written to w.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	_, ok := terminalFd(w)
	return ok
}

// outputWidth is the terminal width of w, or fallback when w isn't a terminal.
func outputWidth(w io.Writer, fallback int) int {
	if fd, ok := terminalFd(w); ok {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}
