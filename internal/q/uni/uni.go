// Package uni segments text into user-perceived characters and measures it for monospace terminals.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation. Currently only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// Graphemes splits s into grapheme clusters. Concatenating the result yields s. An empty s yields nil.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	n := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		n++
	}
	return n
}

// TextWidth returns the text width of str for monospace fonts in terminals. If opts is nil, locale is assumed to be non-East Asian.
func TextWidth(str string, opts *Options) int {
	return conditionFromOptions(opts).StringWidth(str)
}

// Truncate cuts str so that its width is at most width, never splitting a grapheme cluster. If anything was removed and tail is non-empty, tail is appended
// (its width counts against width).
func Truncate(str string, width int, tail string, opts *Options) string {
	cond := conditionFromOptions(opts)
	if cond.StringWidth(str) <= width {
		return str
	}
	limit := width - cond.StringWidth(tail)
	if limit < 0 {
		limit = 0
		tail = ""
	}

	var b strings.Builder
	used := 0
	iter := graphemes.FromString(str)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if used+w > limit {
			break
		}
		b.WriteString(iter.Value())
		used += w
	}
	b.WriteString(tail)
	return b.String()
}

// PadRight pads str with spaces until its width is width. If str is already at least width wide, it is returned unchanged.
func PadRight(str string, width int, opts *Options) string {
	w := TextWidth(str, opts)
	if w >= width {
		return str
	}
	return str + strings.Repeat(" ", width-w)
}

// Fit truncates (with "…") or pads str so that its width is exactly width.
func Fit(str string, width int, opts *Options) string {
	if width <= 0 {
		return ""
	}
	return PadRight(Truncate(str, width, "…", opts), width, opts)
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
