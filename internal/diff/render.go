package diff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toolbench/toolbench/internal/q/termformat"
	"github.com/toolbench/toolbench/internal/q/uni"
)

// ANSI escape sequences used by the renderers.
const (
	ansiReset     = "\x1b[0m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiYellow    = "\x1b[33m"
	ansiMagenta   = "\x1b[35m"
	ansiDim       = "\x1b[2m"
	ansiRedSpan   = "\x1b[30;48;5;217m" // black on pink: removed text within a line
	ansiGreenSpan = "\x1b[30;48;5;114m" // black on green: added text within a line
)

// displayTabWidth is the number of spaces a tab expands to in rendered output.
const displayTabWidth = 4

// display escapes control characters in compared text and expands tabs, so rendered output can't move the cursor or restyle the terminal.
func display(s string) string {
	return termformat.Sanitize(s, displayTabWidth)
}

// RenderUnified returns a human-oriented unified rendering of r. If color, the output includes ANSI colors.
//
// Lines mode: a unified diff body with "@@ -a,b +c,d @@" headers, and " ", "-", "+" line markers. contextSize controls how many unchanged lines surround each
// group of changes; a negative contextSize shows every line in a single group. Modified lines are shown as a "-" line followed (where the alignment places it) by
// a "+" line; with color, the intra-line changes are highlighted.
//
// Characters and Words mode: the right text with changes marked inline, "[-removed-]" and "{+added+}" (or colored, if color). contextSize is ignored.
//
// If r has no changes, the result is the empty string.
func (r Result) RenderUnified(color bool, contextSize int) string {
	if !r.HasChanges() {
		return ""
	}
	if r.Mode != Lines {
		return r.renderInline(color)
	}
	return r.renderLines(color, contextSize)
}

func (r Result) renderLines(color bool, contextSize int) string {
	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	// Modified lines carry their IntraChanges on Left/Right; index them by line number for highlighting.
	oldModified := map[int]Line{}
	newModified := map[int]Line{}
	for _, ln := range r.Left {
		if ln.Kind == Modified {
			oldModified[ln.LineNumber] = ln
		}
	}
	for _, ln := range r.Right {
		if ln.Kind == Modified {
			newModified[ln.LineNumber] = ln
		}
	}

	// Pick which unified lines to show.
	show := make([]bool, len(r.Unified))
	for i, u := range r.Unified {
		if u.Kind == Unchanged {
			continue
		}
		lo, hi := 0, len(r.Unified)-1
		if contextSize >= 0 {
			lo = max(0, i-contextSize)
			hi = min(len(r.Unified)-1, i+contextSize)
		}
		for k := lo; k <= hi; k++ {
			show[k] = true
		}
	}

	var out []string
	oldPos, newPos := 0, 0 // lines consumed before the current position
	for i := 0; i < len(r.Unified); {
		if !show[i] {
			oldPos, newPos = advance(r.Unified[i], oldPos, newPos)
			i++
			continue
		}

		j := i
		for j < len(r.Unified) && show[j] {
			j++
		}
		group := r.Unified[i:j]

		var oldCount, newCount int
		for _, u := range group {
			if u.OldLineNumber != nil {
				oldCount++
			}
			if u.NewLineNumber != nil {
				newCount++
			}
		}
		out = append(out, colorize(fmt.Sprintf("@@ -%s +%s @@", hunkRange(oldPos, oldCount), hunkRange(newPos, newCount)), ansiMagenta))

		for _, u := range group {
			switch u.Kind {
			case Unchanged:
				out = append(out, " "+display(u.Content))
			case Removed:
				if ln, ok := oldModified[*u.OldLineNumber]; ok && color {
					out = append(out, ansiRed+"-"+highlight(ln.IntraChanges, Removed, ansiRed)+ansiReset)
				} else {
					out = append(out, colorize("-"+display(u.Content), ansiRed))
				}
			case Added:
				if ln, ok := newModified[*u.NewLineNumber]; ok && color {
					out = append(out, ansiGreen+"+"+highlight(ln.IntraChanges, Added, ansiGreen)+ansiReset)
				} else {
					out = append(out, colorize("+"+display(u.Content), ansiGreen))
				}
			}
			oldPos, newPos = advance(u, oldPos, newPos)
		}
		i = j
	}
	return strings.Join(out, defaultEOL)
}

func advance(u UnifiedLine, oldPos, newPos int) (int, int) {
	if u.OldLineNumber != nil {
		oldPos++
	}
	if u.NewLineNumber != nil {
		newPos++
	}
	return oldPos, newPos
}

// hunkRange formats the "start,count" half of a hunk header, where before is the number of lines preceding the hunk on that side. Like diff(1), an empty range
// starts at the line before it.
func hunkRange(before, count int) string {
	if count == 0 {
		return strconv.Itoa(before) + ",0"
	}
	return strconv.Itoa(before+1) + "," + strconv.Itoa(count)
}

// highlight renders intra-line changes, emphasizing the changes of kind changed and restoring base after each emphasized span.
func highlight(changes []Change, changed Kind, base string) string {
	var b strings.Builder
	for _, c := range changes {
		if c.Kind != changed {
			b.WriteString(display(c.Value))
			continue
		}
		b.WriteString(ansiReset)
		if changed == Removed {
			b.WriteString(ansiRedSpan)
		} else {
			b.WriteString(ansiGreenSpan)
		}
		b.WriteString(display(c.Value))
		b.WriteString(ansiReset)
		b.WriteString(base)
	}
	return b.String()
}

// renderInline renders a Characters/Words result as running text. Newlines are re-inserted where line numbers advance.
func (r Result) renderInline(color bool) string {
	var b strings.Builder
	curOld, curNew := 1, 1
	for _, u := range r.Unified {
		breaks := 0
		if u.OldLineNumber != nil {
			breaks = max(breaks, *u.OldLineNumber-curOld)
			curOld = *u.OldLineNumber
		}
		if u.NewLineNumber != nil {
			breaks = max(breaks, *u.NewLineNumber-curNew)
			curNew = *u.NewLineNumber
		}
		b.WriteString(strings.Repeat(defaultEOL, breaks))

		content := display(u.Content)
		switch u.Kind {
		case Unchanged:
			b.WriteString(content)
		case Removed:
			if color {
				b.WriteString(ansiRedSpan + content + ansiReset)
			} else {
				b.WriteString("[-" + content + "-]")
			}
		case Added:
			if color {
				b.WriteString(ansiGreenSpan + content + ansiReset)
			} else {
				b.WriteString("{+" + content + "+}")
			}
		}
	}
	return b.String()
}

// sideCell is one half of a side-by-side row.
type sideCell struct {
	number  int // 0 for blank
	kind    Kind
	content string
	blank   bool
}

// RenderSideBySide renders r as two columns (left text, right text) fitting in width terminal columns. Each cell has a line-number gutter and a marker:
// "-" removed, "+" added, "~" modified, " " unchanged. Content that doesn't fit is truncated with "…". If color, changed cells are colored (removed red,
// added green, modified yellow).
//
// In Characters and Words mode, fragments are regrouped into whole lines, and a line's marker reflects whether any fragment on it changed.
func (r Result) RenderSideBySide(width int, color bool) string {
	rows := r.sideRows()
	if len(rows) == 0 {
		return ""
	}

	maxNum := 1
	for _, row := range rows {
		maxNum = max(maxNum, row[0].number, row[1].number)
	}
	gutter := len(strconv.Itoa(maxNum))

	const separator = " │ "
	// Each cell: gutter, space, marker, space, content.
	contentWidth := (width-len([]rune(separator)))/2 - gutter - 3
	if contentWidth < 1 {
		contentWidth = 1
	}

	renderCell := func(c sideCell) string {
		if c.blank {
			return strings.Repeat(" ", gutter+3+contentWidth)
		}
		marker := " "
		code := ""
		switch c.kind {
		case Removed:
			marker, code = "-", ansiRed
		case Added:
			marker, code = "+", ansiGreen
		case Modified:
			marker, code = "~", ansiYellow
		}
		num := fmt.Sprintf("%*d", gutter, c.number)
		text := marker + " " + uni.Fit(display(c.content), contentWidth, nil)
		if color {
			num = ansiDim + num + ansiReset
			if code != "" {
				text = code + text + ansiReset
			}
		}
		return num + " " + text
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, strings.TrimRight(renderCell(row[0])+separator+renderCell(row[1]), " "))
	}
	return strings.Join(out, defaultEOL)
}

func (r Result) sideRows() [][2]sideCell {
	if r.Mode == Lines {
		rows := make([][2]sideCell, len(r.Left))
		for i := range r.Left {
			rows[i] = [2]sideCell{lineCell(r.Left[i]), lineCell(r.Right[i])}
		}
		return rows
	}

	left := regroupFragments(r.Left)
	right := regroupFragments(r.Right)
	rows := make([][2]sideCell, max(len(left), len(right)))
	for i := range rows {
		rows[i][0] = sideCell{blank: true}
		rows[i][1] = sideCell{blank: true}
		if i < len(left) {
			rows[i][0] = left[i]
		}
		if i < len(right) {
			rows[i][1] = right[i]
		}
	}
	return rows
}

func lineCell(ln Line) sideCell {
	if ln.Placeholder {
		return sideCell{blank: true}
	}
	return sideCell{number: ln.LineNumber, kind: ln.Kind, content: ln.Content}
}

// regroupFragments joins Characters/Words fragments into one cell per visual line, numbered from 1 up to the last line with a fragment.
func regroupFragments(frags []Line) []sideCell {
	if len(frags) == 0 {
		return nil
	}
	cells := make([]sideCell, frags[len(frags)-1].LineNumber)
	for i := range cells {
		cells[i] = sideCell{number: i + 1, kind: Unchanged}
	}
	for _, f := range frags {
		c := &cells[f.LineNumber-1]
		c.content += f.Content
		if f.Kind != Unchanged {
			c.kind = f.Kind
		}
	}
	return cells
}
