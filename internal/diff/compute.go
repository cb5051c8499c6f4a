package diff

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/toolbench/toolbench/internal/q/uni"
)

// Compute compares left to right at the granularity of mode. An unknown mode is treated as Characters.
func Compute(left, right string, mode Mode) Result {
	var r Result
	switch mode {
	case Lines:
		r = computeLines(left, right)
	case Words:
		r = computeInline(left, right, Words)
	default:
		r = computeInline(left, right, Characters)
	}

	if err := r.validate(left, right); err != nil {
		panic(fmt.Errorf("Compute: validate failed with %v", err))
	}

	return r
}

// Changes returns the coalesced alignment of left and right at the granularity of mode, before any splitting into lines.
func Changes(left, right string, mode Mode) []Change {
	return runsToChanges(align(tokenize(left, mode), tokenize(right, mode)))
}

// run is a maximal sequence of tokens with the same kind (Added, Removed or Unchanged).
type run struct {
	kind   Kind
	tokens []string
}

func (r run) text() string {
	return strings.Join(r.tokens, "")
}

// align aligns oldTokens to newTokens. Each distinct token is encoded as one rune so diffmatchpatch can run its rune-level Myers diff over token sequences
// (the same trick DiffLinesToRunes uses for lines). Runs are decoded by position, not by text, so the encoding never leaks into the result.
func align(oldTokens, newTokens []string) []run {
	enc := newTokenEncoder()
	rOld := enc.encode(oldTokens)
	rNew := enc.encode(newTokens)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // Results must not depend on how fast the machine is.
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var runs []run
	oi, ni := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if n == 0 {
			continue
		}
		var r run
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			r = run{kind: Unchanged, tokens: oldTokens[oi : oi+n]}
			oi += n
			ni += n
		case diffmatchpatch.DiffDelete:
			r = run{kind: Removed, tokens: oldTokens[oi : oi+n]}
			oi += n
		case diffmatchpatch.DiffInsert:
			r = run{kind: Added, tokens: newTokens[ni : ni+n]}
			ni += n
		}
		if len(runs) > 0 && runs[len(runs)-1].kind == r.kind {
			last := &runs[len(runs)-1]
			last.tokens = append(last.tokens[:len(last.tokens):len(last.tokens)], r.tokens...)
			continue
		}
		runs = append(runs, r)
	}
	return runs
}

func runsToChanges(runs []run) []Change {
	changes := make([]Change, 0, len(runs))
	for _, r := range runs {
		changes = append(changes, Change{Value: r.text(), Kind: r.kind})
	}
	return changes
}

// tokenEncoder maps distinct tokens to distinct runes, skipping the surrogate range (diffmatchpatch converts runes to strings, where surrogates would collapse
// into U+FFFD and compare equal).
type tokenEncoder struct {
	ids  map[string]rune
	next rune
}

func newTokenEncoder() *tokenEncoder {
	return &tokenEncoder{ids: map[string]rune{}, next: 1}
}

func (e *tokenEncoder) encode(tokens []string) []rune {
	out := make([]rune, len(tokens))
	for i, tok := range tokens {
		id, ok := e.ids[tok]
		if !ok {
			id = e.next
			e.ids[tok] = id
			e.next++
			if e.next == 0xD800 {
				e.next = 0xE000
			}
		}
		out[i] = id
	}
	return out
}

// tokenize splits s into the tokens of mode. Concatenating the tokens yields s, except in Lines mode where tokens are lines without their terminating '\n'.
func tokenize(s string, mode Mode) []string {
	switch mode {
	case Lines:
		return splitLines(s)
	case Words:
		return splitWords(s)
	default:
		return uni.Graphemes(s)
	}
}

// splitLines splits text on '\n'. A trailing '\n' terminates the last line rather than starting an empty one, so "a\nb\n" and "a\nb" are both two lines and
// "" is zero lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, defaultEOL)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitWords splits s into alternating runs of whitespace and non-whitespace.
func splitWords(s string) []string {
	var words []string
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i > 0 && space != inSpace {
			words = append(words, s[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

// computeInline builds a Result for Characters and Words mode: each Change is split on '\n' into per-line fragments.
func computeInline(left, right string, mode Mode) Result {
	runs := align(tokenize(left, mode), tokenize(right, mode))
	r := Result{Mode: mode}

	leftNum, rightNum := 1, 1
	for _, ru := range runs {
		switch ru.kind {
		case Added:
			r.Stats.Additions++
		case Removed:
			r.Stats.Deletions++
		default:
			r.Stats.Unchanged++
		}

		onLeft := ru.kind != Added
		onRight := ru.kind != Removed
		for i, part := range strings.Split(ru.text(), defaultEOL) {
			if i > 0 {
				if onLeft {
					leftNum++
				}
				if onRight {
					rightNum++
				}
			}
			if part == "" {
				continue
			}
			u := UnifiedLine{Content: part, Kind: ru.kind}
			if onLeft {
				r.Left = append(r.Left, Line{Content: part, Kind: ru.kind, LineNumber: leftNum})
				u.OldLineNumber = intPtr(leftNum)
			}
			if onRight {
				r.Right = append(r.Right, Line{Content: part, Kind: ru.kind, LineNumber: rightNum})
				u.NewLineNumber = intPtr(rightNum)
			}
			r.Unified = append(r.Unified, u)
		}
	}
	return r
}

// computeLines builds a Result for Lines mode.
//
// Both the alignment (several LCSs can be optimal) and the greedy Modified pairing depend on which text is on the left. So the pair is always diffed with the
// lexically smaller text on the left, and mirrored when the caller passed them the other way round. Swapping the arguments then swaps Additions and Deletions
// and nothing else.
func computeLines(left, right string) Result {
	if left > right {
		return computeOrderedLines(right, left).mirror()
	}
	return computeOrderedLines(left, right)
}

func computeOrderedLines(left, right string) Result {
	runs := align(splitLines(left), splitLines(right))
	r := Result{Mode: Lines}

	oldNum, newNum := 0, 0
	for _, ru := range runs {
		for _, ln := range ru.tokens {
			switch ru.kind {
			case Unchanged:
				oldNum++
				newNum++
				r.Left = append(r.Left, Line{Content: ln, Kind: Unchanged, LineNumber: oldNum})
				r.Right = append(r.Right, Line{Content: ln, Kind: Unchanged, LineNumber: newNum})
				r.Unified = append(r.Unified, UnifiedLine{Content: ln, Kind: Unchanged, OldLineNumber: intPtr(oldNum), NewLineNumber: intPtr(newNum)})
				r.Stats.Unchanged++
			case Removed:
				oldNum++
				r.Left = append(r.Left, Line{Content: ln, Kind: Removed, LineNumber: oldNum})
				r.Unified = append(r.Unified, UnifiedLine{Content: ln, Kind: Removed, OldLineNumber: intPtr(oldNum)})
				r.Stats.Deletions++
			case Added:
				newNum++
				r.Right = append(r.Right, Line{Content: ln, Kind: Added, LineNumber: newNum})
				r.Unified = append(r.Unified, UnifiedLine{Content: ln, Kind: Added, NewLineNumber: intPtr(newNum)})
				r.Stats.Additions++
			}
		}
	}

	pairModified(&r)
	r.Left, r.Right = padSides(r.Left, r.Right)
	return r
}

// padSides inserts placeholders so that left and right have equal length and the n-th Unchanged line of each side lands on the same row. Within each block of
// changes between unchanged lines, the shorter side is padded at the end of the block.
func padSides(left, right []Line) ([]Line, []Line) {
	var outL, outR []Line
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		bi := i
		for bi < len(left) && left[bi].Kind != Unchanged {
			bi++
		}
		bj := j
		for bj < len(right) && right[bj].Kind != Unchanged {
			bj++
		}

		outL = append(outL, left[i:bi]...)
		outR = append(outR, right[j:bj]...)
		for k := bi - i; k < bj-j; k++ {
			outL = append(outL, placeholder())
		}
		for k := bj - j; k < bi-i; k++ {
			outR = append(outR, placeholder())
		}
		i, j = bi, bj

		switch {
		case i < len(left) && j < len(right):
			outL = append(outL, left[i])
			outR = append(outR, right[j])
			i++
			j++
		case i < len(left):
			// Unreachable while both sides hold the same unchanged lines, but never loop forever.
			outL = append(outL, left[i])
			outR = append(outR, placeholder())
			i++
		case j < len(right):
			outL = append(outL, placeholder())
			outR = append(outR, right[j])
			j++
		}
	}
	return outL, outR
}

func placeholder() Line {
	return Line{Kind: Unchanged, Placeholder: true}
}

// mirror returns the Lines-mode result of diffing r's texts in the opposite direction: sides swap, and Added and Removed trade places. In the unified view
// each block of changes is reordered so removals still come before additions.
func (r Result) mirror() Result {
	m := Result{
		Mode:  r.Mode,
		Left:  mirrorLines(r.Right),
		Right: mirrorLines(r.Left),
		Stats: Stats{
			Additions:     r.Stats.Deletions,
			Deletions:     r.Stats.Additions,
			Modifications: r.Stats.Modifications,
			Unchanged:     r.Stats.Unchanged,
		},
	}

	m.Unified = make([]UnifiedLine, 0, len(r.Unified))
	for i := 0; i < len(r.Unified); {
		u := r.Unified[i]
		if u.Kind == Unchanged {
			m.Unified = append(m.Unified, UnifiedLine{Content: u.Content, Kind: Unchanged, OldLineNumber: u.NewLineNumber, NewLineNumber: u.OldLineNumber})
			i++
			continue
		}

		j := i
		for j < len(r.Unified) && r.Unified[j].Kind != Unchanged {
			j++
		}
		block := r.Unified[i:j]
		for _, want := range []Kind{Added, Removed} { // Added lines become the removals.
			for _, b := range block {
				if b.Kind == want {
					m.Unified = append(m.Unified, UnifiedLine{Content: b.Content, Kind: flipKind(b.Kind), OldLineNumber: b.NewLineNumber, NewLineNumber: b.OldLineNumber})
				}
			}
		}
		i = j
	}
	return m
}

func mirrorLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, ln := range lines {
		out[i] = ln
		out[i].Kind = flipKind(ln.Kind)
		if ln.IntraChanges != nil {
			out[i].IntraChanges = make([]Change, len(ln.IntraChanges))
			for ci, c := range ln.IntraChanges {
				out[i].IntraChanges[ci] = Change{Value: c.Value, Kind: flipKind(c.Kind)}
			}
		}
	}
	return out
}

func flipKind(k Kind) Kind {
	switch k {
	case Added:
		return Removed
	case Removed:
		return Added
	}
	return k
}
