package textmatch

// Distance returns the Levenshtein edit distance between a and b, counted in runes:
// the minimum number of single-rune insertions, deletions and substitutions turning a into b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Single-row DP over the shorter string.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diagonal := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			above := row[j]
			row[j] = min(row[j-1]+1, above+1, diagonal+cost)
			diagonal = above
		}
	}

	return row[len(rb)]
}
