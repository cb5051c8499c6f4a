package diff

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allModes = []Mode{Characters, Words, Lines}

// samplePairs are inputs shared by the property tests below.
var samplePairs = [][2]string{
	{"", ""},
	{"", "a"},
	{"a", ""},
	{"\n", ""},
	{"\n\n", "\n"},
	{"hello world", "hello there"},
	{"a\nb\nc\n", "a\nc\n"},
	{"a\nb\nc", "a\nB\nc\nd"},
	{"func foo() {\n\treturn 1\n}\n", "func foo() {\n\tx := 1\n\treturn x\n}\n"},
	{"héllo wörld\n日本語\n", "hello world\n日本\n"},
	{"é\n\U0001F468‍\U0001F469", "e\n\U0001F468"},
	{"  leading and trailing  ", "leading\tand trailing"},
	{"one\r\ntwo\r\n", "one\ntwo\n"},
	{strings.Repeat("x\n", 50), strings.Repeat("x\n", 25) + "y\n" + strings.Repeat("x\n", 25)},
}

func TestCompute_Totality(t *testing.T) {
	for _, pair := range samplePairs {
		for _, mode := range allModes {
			t.Run(fmt.Sprintf("%s/%q", mode, pair[0]), func(t *testing.T) {
				var r Result
				require.NotPanics(t, func() { r = Compute(pair[0], pair[1], mode) })
				require.NoError(t, r.validate(pair[0], pair[1]))
				assert.Equal(t, mode, r.Mode)
				assert.GreaterOrEqual(t, r.Stats.Additions+r.Stats.Deletions+r.Stats.Modifications+r.Stats.Unchanged, 0)
			})
		}
	}
}

func TestCompute_Identity(t *testing.T) {
	for _, pair := range samplePairs {
		for _, text := range pair {
			for _, mode := range allModes {
				r := Compute(text, text, mode)
				assert.Zero(t, r.Stats.Additions, "mode=%s text=%q", mode, text)
				assert.Zero(t, r.Stats.Deletions, "mode=%s text=%q", mode, text)
				assert.Zero(t, r.Stats.Modifications, "mode=%s text=%q", mode, text)
				assert.False(t, r.HasChanges())
			}
		}
	}
}

func TestCompute_LineCountSymmetry(t *testing.T) {
	for _, pair := range samplePairs {
		forward := Compute(pair[0], pair[1], Lines)
		backward := Compute(pair[1], pair[0], Lines)
		assert.Equal(t, forward.Stats.Additions, backward.Stats.Deletions, "pair=%q", pair)
		assert.Equal(t, forward.Stats.Deletions, backward.Stats.Additions, "pair=%q", pair)
		assert.Equal(t, forward.Stats.Modifications, backward.Stats.Modifications, "pair=%q", pair)
		assert.Equal(t, forward.Stats.Unchanged, backward.Stats.Unchanged, "pair=%q", pair)
	}
}

func TestCompute_LineCountSymmetryRandom(t *testing.T) {
	// Near-identical lines make both the LCS choice and the Modified pairing ambiguous.
	vocab := []string{"abcdx", "abcd1", "abcd2", "abcdy", "k", "kk", ""}
	rng := rand.New(rand.NewPCG(1, 2))
	text := func() string {
		lines := make([]string, rng.IntN(6))
		for i := range lines {
			lines[i] = vocab[rng.IntN(len(vocab))]
		}
		return strings.Join(lines, "\n")
	}

	pairs := [][2]string{{"abcdx\nabcdx\nabcdx\nabcd1\nk", "k\nabcdx\nabcd2\nabcd2"}}
	for range 5000 {
		pairs = append(pairs, [2]string{text(), text()})
	}

	for _, pair := range pairs {
		forward := Compute(pair[0], pair[1], Lines)
		backward := Compute(pair[1], pair[0], Lines)
		want := Stats{
			Additions:     backward.Stats.Deletions,
			Deletions:     backward.Stats.Additions,
			Modifications: backward.Stats.Modifications,
			Unchanged:     backward.Stats.Unchanged,
		}
		require.Equal(t, want, forward.Stats, "pair=%q", pair)
	}
}

func TestCompute_LinesMirrored(t *testing.T) {
	// "b" > "B", so this pair is diffed right-to-left internally and mirrored back.
	r := Compute("a\nb\nc\n", "a\nB\nc\n", Lines)
	require.NoError(t, r.validate("a\nb\nc\n", "a\nB\nc\n"))
	assert.Equal(t, Stats{Additions: 1, Deletions: 1, Unchanged: 2}, r.Stats)
	assert.Equal(t, Line{Content: "b", Kind: Removed, LineNumber: 2}, r.Left[1])
	assert.Equal(t, Line{Content: "B", Kind: Added, LineNumber: 2}, r.Right[1])
	require.Len(t, r.Unified, 4)
	assert.Equal(t, UnifiedLine{Content: "b", Kind: Removed, OldLineNumber: intPtr(2)}, r.Unified[1])
	assert.Equal(t, UnifiedLine{Content: "B", Kind: Added, NewLineNumber: intPtr(2)}, r.Unified[2])

	m := Compute("abcdefgh\n", "abcdefgX\n", Lines)
	require.NoError(t, m.validate("abcdefgh\n", "abcdefgX\n"))
	assert.Equal(t, []Change{{Value: "abcdefg", Kind: Unchanged}, {Value: "h", Kind: Removed}}, m.Left[0].IntraChanges)
	assert.Equal(t, []Change{{Value: "abcdefg", Kind: Unchanged}, {Value: "X", Kind: Added}}, m.Right[0].IntraChanges)
}

func TestCompute_LineReconstruction(t *testing.T) {
	collect := func(lines []Line) []string {
		var out []string
		for _, ln := range lines {
			if ln.Placeholder {
				continue
			}
			out = append(out, ln.Content)
		}
		return out
	}

	for _, pair := range samplePairs {
		r := Compute(pair[0], pair[1], Lines)
		assert.Equal(t, splitLines(pair[0]), collect(r.Left), "pair=%q", pair)
		assert.Equal(t, splitLines(pair[1]), collect(r.Right), "pair=%q", pair)
		assert.Len(t, r.Right, len(r.Left))
	}
}

func TestCompute_WordsExample(t *testing.T) {
	r := Compute("hello world", "hello there", Words)

	assert.Equal(t, Stats{Additions: 1, Deletions: 1, Unchanged: 1}, r.Stats)
	assert.Equal(t, []Change{
		{Value: "hello ", Kind: Unchanged},
		{Value: "world", Kind: Removed},
		{Value: "there", Kind: Added},
	}, Changes("hello world", "hello there", Words))

	want := Result{
		Mode: Words,
		Left: []Line{
			{Content: "hello ", Kind: Unchanged, LineNumber: 1},
			{Content: "world", Kind: Removed, LineNumber: 1},
		},
		Right: []Line{
			{Content: "hello ", Kind: Unchanged, LineNumber: 1},
			{Content: "there", Kind: Added, LineNumber: 1},
		},
		Unified: []UnifiedLine{
			{Content: "hello ", Kind: Unchanged, OldLineNumber: intPtr(1), NewLineNumber: intPtr(1)},
			{Content: "world", Kind: Removed, OldLineNumber: intPtr(1)},
			{Content: "there", Kind: Added, NewLineNumber: intPtr(1)},
		},
		Stats: Stats{Additions: 1, Deletions: 1, Unchanged: 1},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Fatalf("Compute mismatch (-want +got):\n%s", d)
	}
}

func TestCompute_CharactersSplitsOnNewlines(t *testing.T) {
	r := Compute("ab\ncd", "ab\ncX", Characters)

	assert.Equal(t, Stats{Additions: 1, Deletions: 1, Unchanged: 1}, r.Stats)
	assert.Equal(t, []Line{
		{Content: "ab", Kind: Unchanged, LineNumber: 1},
		{Content: "c", Kind: Unchanged, LineNumber: 2},
		{Content: "d", Kind: Removed, LineNumber: 2},
	}, r.Left)
	assert.Equal(t, []Line{
		{Content: "ab", Kind: Unchanged, LineNumber: 1},
		{Content: "c", Kind: Unchanged, LineNumber: 2},
		{Content: "X", Kind: Added, LineNumber: 2},
	}, r.Right)
	require.Len(t, r.Unified, 4)
	assert.Equal(t, 2, *r.Unified[2].OldLineNumber)
	assert.Nil(t, r.Unified[2].NewLineNumber)
	assert.Nil(t, r.Unified[3].OldLineNumber)
	assert.Equal(t, 2, *r.Unified[3].NewLineNumber)
}

func TestCompute_AddedNewlinesOnlyAdvanceRight(t *testing.T) {
	r := Compute("a b", "a\n\nb", Words)

	// Left stays on one line; right moves to line 3 for "b".
	for _, ln := range r.Left {
		assert.Equal(t, 1, ln.LineNumber)
	}
	last := r.Right[len(r.Right)-1]
	assert.Equal(t, "b", last.Content)
	assert.Equal(t, 3, last.LineNumber)
}

func TestCompute_CharactersKeepsGraphemes(t *testing.T) {
	r := Compute("é", "e", Characters)

	// The accented cluster is one token, so it is replaced as a whole rather than losing only the combining mark.
	assert.Equal(t, Stats{Additions: 1, Deletions: 1}, r.Stats)
}

func TestCompute_EmptyInputs(t *testing.T) {
	both := Compute("", "", Lines)
	assert.Empty(t, both.Left)
	assert.Empty(t, both.Right)
	assert.Empty(t, both.Unified)
	assert.Equal(t, Stats{}, both.Stats)

	added := Compute("", "a\nb\n", Lines)
	assert.Equal(t, Stats{Additions: 2}, added.Stats)
	require.Len(t, added.Left, 2)
	assert.True(t, added.Left[0].Placeholder)
	assert.True(t, added.Left[1].Placeholder)
	assert.Equal(t, Added, added.Right[1].Kind)
	assert.Equal(t, 2, added.Right[1].LineNumber)

	removed := Compute("a\nb\n", "", Words)
	assert.Equal(t, Stats{Deletions: 1}, removed.Stats)
	assert.Empty(t, removed.Right)
}

func TestCompute_TrailingNewlineIsTerminator(t *testing.T) {
	r := Compute("a\nb\n", "a\nb", Lines)
	assert.False(t, r.HasChanges())
	assert.Len(t, r.Left, 2)
}

func TestCompute_Padding(t *testing.T) {
	r := Compute("a\nb\nc\n", "a\nc\n", Lines)

	assert.Equal(t, []Line{
		{Content: "a", Kind: Unchanged, LineNumber: 1},
		{Content: "b", Kind: Removed, LineNumber: 2},
		{Content: "c", Kind: Unchanged, LineNumber: 3},
	}, r.Left)
	assert.Equal(t, []Line{
		{Content: "a", Kind: Unchanged, LineNumber: 1},
		{Kind: Unchanged, Placeholder: true},
		{Content: "c", Kind: Unchanged, LineNumber: 2},
	}, r.Right)
	assert.Len(t, r.Unified, 3)
}

func TestCompute_ModifiedPairing(t *testing.T) {
	r := Compute("foo bar baz\nkeep\n", "foo bar qux\nkeep\n", Lines)

	assert.Equal(t, Stats{Modifications: 1, Unchanged: 1}, r.Stats)
	require.Len(t, r.Left, 2)
	assert.Equal(t, Modified, r.Left[0].Kind)
	assert.Equal(t, Modified, r.Right[0].Kind)
	assert.Equal(t, []Change{{Value: "foo bar ", Kind: Unchanged}, {Value: "baz", Kind: Removed}}, r.Left[0].IntraChanges)
	assert.Equal(t, []Change{{Value: "foo bar ", Kind: Unchanged}, {Value: "qux", Kind: Added}}, r.Right[0].IntraChanges)

	// The unified view keeps the original kinds.
	require.Len(t, r.Unified, 3)
	assert.Equal(t, Removed, r.Unified[0].Kind)
	assert.Equal(t, Added, r.Unified[1].Kind)
}

func TestCompute_ModifiedPairingBounds(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		want  Stats
	}{
		{
			name:  "similar lines five apart are not paired",
			left:  "The quick brown fox\na\nb\nc\nd\ne\n",
			right: "a\nb\nc\nd\ne\nThe quick brown fax\n",
			want:  Stats{Additions: 1, Deletions: 1, Unchanged: 5},
		},
		{
			name:  "similar lines three apart are paired",
			left:  "The quick brown fox\na\nb\nc\n",
			right: "a\nb\nc\nThe quick brown fax\n",
			want:  Stats{Modifications: 1, Unchanged: 3},
		},
		{
			name:  "dissimilar lines are not paired",
			left:  "abc\n",
			right: "xyz\n",
			want:  Stats{Additions: 1, Deletions: 1},
		},
		{
			name:  "similarity of exactly one half is not enough",
			left:  "ab\n",
			right: "ax\n",
			want:  Stats{Additions: 1, Deletions: 1},
		},
		{
			name:  "each added line pairs at most once",
			left:  "abcd1\nabcd2\n",
			right: "abcd3\n",
			want:  Stats{Deletions: 1, Modifications: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(tt.left, tt.right, Lines)
			assert.Equal(t, tt.want, r.Stats)
		})
	}
}

func TestCompute_ModifiedFirstMatchWins(t *testing.T) {
	r := Compute("ctx\nabcdefgh\n", "ctx\nabcdefgX\nabcdefgh2\n", Lines)

	assert.Equal(t, Stats{Additions: 1, Modifications: 1, Unchanged: 1}, r.Stats)
	require.Len(t, r.Right, 3)
	assert.Equal(t, Modified, r.Right[1].Kind)
	assert.Equal(t, "abcdefgX", r.Right[1].Content)
	assert.Equal(t, Added, r.Right[2].Kind)

	require.Len(t, r.Left, 3)
	assert.Equal(t, Modified, r.Left[1].Kind)
	assert.True(t, r.Left[2].Placeholder)
}

func TestCompute_ModifiedOnlyInLinesMode(t *testing.T) {
	for _, mode := range []Mode{Characters, Words} {
		r := Compute("foo bar baz\n", "foo bar qux\n", mode)
		assert.Zero(t, r.Stats.Modifications)
		for _, ln := range append(r.Left, r.Right...) {
			assert.NotEqual(t, Modified, ln.Kind)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"characters", Characters},
		{"chars", Characters},
		{"Words", Words},
		{" lines ", Lines},
		{"line", Lines},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("paragraphs")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestKindAndModeText(t *testing.T) {
	b, err := Modified.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "modified", string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("added")))
	assert.Equal(t, Added, k)
	require.Error(t, k.UnmarshalText([]byte("bogus")))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("words")))
	assert.Equal(t, Words, m)
	assert.Equal(t, "lines", Lines.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestSplitWords(t *testing.T) {
	assert.Nil(t, splitWords(""))
	assert.Equal(t, []string{"hello", " ", "world"}, splitWords("hello world"))
	assert.Equal(t, []string{"  ", "a", "\t\n", "b", " "}, splitWords("  a\t\nb "))
}

func TestTokenEncoderSkipsSurrogates(t *testing.T) {
	enc := newTokenEncoder()
	tokens := make([]string, 0xE000)
	for i := range tokens {
		tokens[i] = fmt.Sprint(i)
	}
	runes := enc.encode(tokens)
	for _, r := range runes {
		assert.False(t, r >= 0xD800 && r < 0xE000, "encoded a surrogate: %U", r)
	}
}
