package diff

// Levenshtein returns the edit distance between a and b in runes (insertions, deletions and substitutions all cost 1).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rows of the DP table, indexed by position in the shorter string.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity returns (maxLen - Levenshtein(a, b)) / maxLen, where maxLen is the longer rune length. It is 1 for identical strings (including two empty strings)
// and 0 for strings with nothing in common.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-Levenshtein(a, b)) / float64(maxLen)
}

// pairModified reclassifies Removed/Added pairs as Modified. r.Left and r.Right must not be padded yet, and must be in computeLines's canonical orientation.
//
// Removed lines are visited in left order. For each, Added lines within ModifiedWindow of its index are scanned in right order, and the first one with Similarity
// above SimilarityThreshold is taken. This is greedy, not an optimal assignment: a later Removed line can lose a candidate an earlier one took.
func pairModified(r *Result) {
	for i := range r.Left {
		if r.Left[i].Kind != Removed {
			continue
		}
		lo := max(0, i-ModifiedWindow)
		hi := min(len(r.Right)-1, i+ModifiedWindow)
		for j := lo; j <= hi; j++ {
			if r.Right[j].Kind != Added {
				continue
			}
			if Similarity(r.Left[i].Content, r.Right[j].Content) <= SimilarityThreshold {
				continue
			}

			oldIntra, newIntra := intraChanges(r.Left[i].Content, r.Right[j].Content)
			r.Left[i].Kind = Modified
			r.Left[i].IntraChanges = oldIntra
			r.Right[j].Kind = Modified
			r.Right[j].IntraChanges = newIntra

			r.Stats.Deletions--
			r.Stats.Additions--
			r.Stats.Modifications++
			break
		}
	}
}

// intraChanges diffs oldLine to newLine by character and partitions the result by side. Both returned slices are non-nil.
func intraChanges(oldLine, newLine string) ([]Change, []Change) {
	oldSide := []Change{}
	newSide := []Change{}
	for _, c := range Changes(oldLine, newLine, Characters) {
		if c.Kind != Added {
			oldSide = append(oldSide, c)
		}
		if c.Kind != Removed {
			newSide = append(newSide, c)
		}
	}
	return oldSide, newSide
}
