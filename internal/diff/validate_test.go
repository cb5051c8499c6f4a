package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DetectsCorruption(t *testing.T) {
	const left = "keep\nfoo bar baz\nold\n"
	const right = "keep\nfoo bar qux\n"

	tests := []struct {
		name    string
		corrupt func(r *Result)
	}{
		{"unequal sides", func(r *Result) { r.Right = r.Right[:len(r.Right)-1] }},
		{"wrong content", func(r *Result) { r.Left[0].Content = "kept" }},
		{"wrong line number", func(r *Result) { r.Left[1].LineNumber = 7 }},
		{"stats drift", func(r *Result) { r.Stats.Deletions++ }},
		{"modified without intra", func(r *Result) { r.Left[1].IntraChanges = nil }},
		{"intra on removed line", func(r *Result) { r.Left[2].IntraChanges = []Change{} }},
		{"intra does not reconstruct", func(r *Result) { r.Right[1].IntraChanges = r.Right[1].IntraChanges[:1] }},
		{"unified missing number", func(r *Result) { r.Unified[0].NewLineNumber = nil }},
		{"placeholder with content", func(r *Result) { r.Right[2].Content = "x" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(left, right, Lines)
			require.NoError(t, r.validate(left, right))

			// Compute shares no slices between results, so corrupting this copy is safe.
			tt.corrupt(&r)
			assert.Error(t, r.validate(left, right))
		})
	}
}

func TestValidate_InlineFragments(t *testing.T) {
	r := Compute("a\nb", "a\nc", Words)
	require.NoError(t, r.validate("a\nb", "a\nc"))

	r.Left[0].Content = ""
	assert.Error(t, r.validate("a\nb", "a\nc"))

	r = Compute("a\nb", "a\nc", Words)
	r.Left[len(r.Left)-1].LineNumber = 1
	assert.Error(t, r.validate("a\nb", "a\nc"))
}
