// Package similarity provides the normalized string closeness score used
// by the candidate cascade.
package similarity

// Ratio returns a similarity score in [0, 1] between two strings: 2*M/T,
// where T is the combined length of both strings and M the number of
// characters matched under an optimal alignment. Identical strings score
// 1.0. Comparison is case-sensitive and on runes; callers normalize case
// (and encoding) beforehand. Symmetric under argument swap.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	// Edit distance with unit insert/delete cost and substitution cost 2.
	// Under that weighting distance = T - 2*M, so the ratio falls out as
	// (T - distance) / T.
	dist := indelDistance(ra, rb)
	return float64(total-dist) / float64(total)
}

func indelDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Single-row dynamic program; only the previous row is live.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += 2
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1

			best := sub
			if del < best {
				best = del
			}
			if ins < best {
				best = ins
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
