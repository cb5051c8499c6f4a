package diff

import (
	"fmt"
	"strings"
)

// validate checks the Result invariants against the texts it was computed from and returns an error on the first violation.
func (r Result) validate(left, right string) error {
	if err := validateUnified(r.Unified); err != nil {
		return err
	}
	if r.Stats.Additions < 0 || r.Stats.Deletions < 0 || r.Stats.Modifications < 0 || r.Stats.Unchanged < 0 {
		return fmt.Errorf("stats: negative count in %+v", r.Stats)
	}
	if r.Mode == Lines {
		return r.validateLines(left, right)
	}
	return r.validateInline(left, right)
}

func (r Result) validateLines(left, right string) error {
	if len(r.Left) != len(r.Right) {
		return fmt.Errorf("lines: len(Left)=%d != len(Right)=%d", len(r.Left), len(r.Right))
	}
	if err := validateSide("left", r.Left, splitLines(left), Removed); err != nil {
		return err
	}
	if err := validateSide("right", r.Right, splitLines(right), Added); err != nil {
		return err
	}

	var removed, added, modLeft, modRight, unchanged int
	for i := range r.Left {
		switch r.Left[i].Kind {
		case Removed:
			removed++
		case Modified:
			modLeft++
		case Unchanged:
			if !r.Left[i].Placeholder {
				unchanged++
			}
		}
		switch r.Right[i].Kind {
		case Added:
			added++
		case Modified:
			modRight++
		}
		// Unchanged lines share a row.
		if r.Left[i].Kind == Unchanged && !r.Left[i].Placeholder {
			if r.Right[i].Kind != Unchanged || r.Right[i].Placeholder || r.Right[i].Content != r.Left[i].Content {
				return fmt.Errorf("row[%d]: unchanged left line not matched by unchanged right line", i)
			}
		}
	}
	if modLeft != modRight {
		return fmt.Errorf("lines: %d modified left lines but %d modified right lines", modLeft, modRight)
	}
	want := Stats{Additions: added, Deletions: removed, Modifications: modLeft, Unchanged: unchanged}
	if r.Stats != want {
		return fmt.Errorf("lines: stats %+v do not match line kinds %+v", r.Stats, want)
	}
	if n := len(splitLines(left)) + len(splitLines(right)) - unchanged; len(r.Unified) != n {
		return fmt.Errorf("lines: len(Unified)=%d, want %d", len(r.Unified), n)
	}
	return nil
}

// validateSide checks one padded side of a Lines-mode result. changed is the side's own change kind (Removed for left, Added for right).
func validateSide(side string, lines []Line, want []string, changed Kind) error {
	num := 0
	for i, ln := range lines {
		if ln.Placeholder {
			if ln.Kind != Unchanged || ln.Content != "" || ln.LineNumber != 0 || ln.IntraChanges != nil {
				return fmt.Errorf("%s[%d]: placeholder must be an empty Unchanged line without a number", side, i)
			}
			continue
		}
		switch ln.Kind {
		case Unchanged, changed:
			if ln.IntraChanges != nil {
				return fmt.Errorf("%s[%d]: IntraChanges on a %s line", side, i, ln.Kind)
			}
		case Modified:
			if ln.IntraChanges == nil {
				return fmt.Errorf("%s[%d]: Modified line without IntraChanges", side, i)
			}
			var b strings.Builder
			for ci, c := range ln.IntraChanges {
				if c.Kind != Unchanged && c.Kind != changed {
					return fmt.Errorf("%s[%d].intra[%d]: unexpected kind %s", side, i, ci, c.Kind)
				}
				b.WriteString(c.Value)
			}
			if b.String() != ln.Content {
				return fmt.Errorf("%s[%d]: IntraChanges do not reconstruct the line", side, i)
			}
		default:
			return fmt.Errorf("%s[%d]: unexpected kind %s", side, i, ln.Kind)
		}

		if num >= len(want) {
			return fmt.Errorf("%s[%d]: more lines than the input has", side, i)
		}
		if ln.Content != want[num] {
			return fmt.Errorf("%s[%d]: content %q, want %q", side, i, ln.Content, want[num])
		}
		num++
		if ln.LineNumber != num {
			return fmt.Errorf("%s[%d]: line number %d, want %d", side, i, ln.LineNumber, num)
		}
	}
	if num != len(want) {
		return fmt.Errorf("%s: %d lines, want %d", side, num, len(want))
	}
	return nil
}

func (r Result) validateInline(left, right string) error {
	if err := validateFragments("left", r.Left, left, Removed); err != nil {
		return err
	}
	return validateFragments("right", r.Right, right, Added)
}

// validateFragments rebuilds text from the fragments of one side (line numbers give the '\n's) and compares it with the input. Trailing newlines produce no
// fragment, so they are not reconstructed.
func validateFragments(side string, frags []Line, text string, changed Kind) error {
	var b strings.Builder
	cur := 1
	for i, f := range frags {
		if f.Kind != Unchanged && f.Kind != changed {
			return fmt.Errorf("%s[%d]: unexpected kind %s", side, i, f.Kind)
		}
		if f.Content == "" || strings.Contains(f.Content, defaultEOL) {
			return fmt.Errorf("%s[%d]: fragment must be non-empty and must not contain EOL", side, i)
		}
		if f.IntraChanges != nil || f.Placeholder {
			return fmt.Errorf("%s[%d]: fragments carry no IntraChanges and are never placeholders", side, i)
		}
		if f.LineNumber < cur {
			return fmt.Errorf("%s[%d]: line number %d goes backwards (at %d)", side, i, f.LineNumber, cur)
		}
		for ; cur < f.LineNumber; cur++ {
			b.WriteString(defaultEOL)
		}
		b.WriteString(f.Content)
	}
	if got, want := b.String(), strings.TrimRight(text, defaultEOL); got != want {
		return fmt.Errorf("%s: fragments do not reconstruct the text", side)
	}
	return nil
}

func validateUnified(lines []UnifiedLine) error {
	lastOld, lastNew := 0, 0
	for i, u := range lines {
		switch u.Kind {
		case Unchanged:
			if u.OldLineNumber == nil || u.NewLineNumber == nil {
				return fmt.Errorf("unified[%d]: Unchanged requires both line numbers", i)
			}
		case Removed:
			if u.OldLineNumber == nil || u.NewLineNumber != nil {
				return fmt.Errorf("unified[%d]: Removed requires only OldLineNumber", i)
			}
		case Added:
			if u.OldLineNumber != nil || u.NewLineNumber == nil {
				return fmt.Errorf("unified[%d]: Added requires only NewLineNumber", i)
			}
		default:
			return fmt.Errorf("unified[%d]: unexpected kind %s", i, u.Kind)
		}
		if u.OldLineNumber != nil {
			if *u.OldLineNumber < max(lastOld, 1) {
				return fmt.Errorf("unified[%d]: old line number %d goes backwards", i, *u.OldLineNumber)
			}
			lastOld = *u.OldLineNumber
		}
		if u.NewLineNumber != nil {
			if *u.NewLineNumber < max(lastNew, 1) {
				return fmt.Errorf("unified[%d]: new line number %d goes backwards", i, *u.NewLineNumber)
			}
			lastNew = *u.NewLineNumber
		}
	}
	return nil
}
