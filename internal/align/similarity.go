package align

// Strategy selects how two text spans are scored.
type Strategy string

const (
	// StrategyTokenSet scores by Jaccard overlap of the normalized token
	// sets. Coarse but robust against word-order noise.
	StrategyTokenSet Strategy = "token-set"
	// StrategyCharSequence scores by the longest-matching-blocks ratio of
	// the normalized strings, a finer-grained signal for near-verbatim
	// matches.
	StrategyCharSequence Strategy = "char-sequence"
)

// Scorer computes a bounded [0,1] similarity between two text spans. Both
// strategies are symmetric and score identical non-empty inputs as 1.0.
type Scorer struct {
	strategy Strategy
	norm     *Normalizer
}

// NewScorer creates a scorer with the given strategy; an empty strategy
// means char-sequence.
func NewScorer(strategy Strategy, norm *Normalizer) *Scorer {
	return &Scorer{strategy: strategy, norm: norm}
}

// Similarity scores a against b using the configured strategy.
func (s *Scorer) Similarity(a, b string) float64 {
	if s.strategy == StrategyTokenSet {
		return s.tokenSimilarity(a, b)
	}
	return s.sequenceSimilarity(a, b)
}

// tokenSimilarity is the Jaccard index over stop-word-filtered token sets.
// Two empty sets count as identical, one empty set as fully dissimilar.
func (s *Scorer) tokenSimilarity(a, b string) float64 {
	setA := tokenSet(s.norm.Tokens(a))
	setB := tokenSet(s.norm.Tokens(b))

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// sequenceSimilarity is 2M/T where M is the total length of the longest
// matching blocks shared by the normalized strings and T the sum of their
// lengths.
func (s *Scorer) sequenceSimilarity(a, b string) float64 {
	ra := []rune(s.norm.Normalize(a))
	rb := []rune(s.norm.Normalize(b))

	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	matched := matchingRunes(ra, rb)
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

// matchingRunes sums the longest common block of a and b with the matches
// found recursively to its left and right.
func matchingRunes(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingRunes(a[:ai], b[:bi])
	total += matchingRunes(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the longest run of runes common to a and b and
// returns its start offsets and length, preferring the earliest run on
// ties.
func longestCommonBlock(a, b []rune) (int, int, int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	bestA, bestB, bestSize := 0, 0, 0
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestSize {
					bestSize = cur[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestA, bestB, bestSize
}
