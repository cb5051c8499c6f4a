// Package diff compares two texts at character, word or line granularity and describes the result in a form suited to side-by-side and unified display.
//
// Representation: Compute returns a Result with three views of the same alignment:
//   - Left: lines (or line fragments) of the left text, kinds Unchanged, Removed or Modified.
//   - Right: lines (or line fragments) of the right text, kinds Unchanged, Added or Modified.
//   - Unified: one interleaved sequence in alignment order, each entry carrying the old and/or new line number that applies.
//
// Alignment: tokens (grapheme clusters, whitespace/non-whitespace runs, or lines) are aligned with Myers' O(ND) algorithm (github.com/sergi/go-diff). Contiguous
// tokens of the same kind are coalesced into a single Change.
//
// Characters and Words: every Change is split on embedded '\n' so no entry spans a visual line. Several entries may share a line number: they are fragments of
// the same visual line. Fragments that would be empty are not emitted. Left and Right are not padded. Stats count Change runs, not fragments.
//
// Lines: '\n' terminates a line; a trailing '\n' does not start an extra empty line. After alignment, a post-pass reclassifies a Removed line and a nearby Added
// line as Modified when they are similar (see ModifiedWindow and SimilarityThreshold); both lines then carry IntraChanges, a character-level diff of their contents.
// Finally Left and Right are padded with placeholders so that they have equal length and unchanged lines share a row.
//
// Invariants (lines mode):
//   - len(Left) == len(Right).
//   - Non-placeholder Left contents, in order, are the lines of the left text; likewise Right for the right text.
//   - IntraChanges is non-nil iff Kind == Modified. Concatenating Left IntraChanges reproduces the left line; likewise for Right.
//   - Stats.Additions/Deletions/Modifications/Unchanged equal the number of Added/Removed/Modified (pairs)/Unchanged lines.
//
// Compute is pure and total: any pair of strings, including empty and non-UTF-8-clean ones, yields a Result.
//
// Rendering: RenderUnified and RenderSideBySide produce human-oriented output, optionally with ANSI colors.
package diff
