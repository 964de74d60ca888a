package align

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func tokenScorer() *Scorer {
	return NewScorer(StrategyTokenSet, NewNormalizer(DefaultStopwords))
}

func sequenceScorer() *Scorer {
	return NewScorer(StrategyCharSequence, NewNormalizer(DefaultStopwords))
}

func TestTokenSimilarity_IdentityAndBounds(t *testing.T) {
	s := tokenScorer()

	if got := s.Similarity("Yana yana sevdik", "yana YANA sevdik!"); !approx(got, 1.0) {
		t.Errorf("similarity of same text modulo case/punctuation = %v, want 1.0", got)
	}
	if got := s.Similarity("aşk güzel", "hayat zor"); !approx(got, 0.0) {
		t.Errorf("similarity of disjoint texts = %v, want 0.0", got)
	}
	a, b := s.Similarity("yana sevdik", "yana bazen"), s.Similarity("yana bazen", "yana sevdik")
	if !approx(a, b) {
		t.Errorf("similarity not symmetric: %v vs %v", a, b)
	}
}

func TestTokenSimilarity_Jaccard(t *testing.T) {
	s := tokenScorer()

	// {yana, sevdik} ∩ {yana, bazen} = 1, union = 3.
	if got := s.Similarity("yana sevdik", "yana bazen"); !approx(got, 1.0/3.0) {
		t.Errorf("Similarity = %v, want 1/3", got)
	}
	// {yana, sevdik} ∩ {yana, sevdik, bazen} = 2, union = 3.
	if got := s.Similarity("yana yana sevdik", "Yana yana sevdik bazen"); !approx(got, 2.0/3.0) {
		t.Errorf("Similarity = %v, want 2/3", got)
	}
}

func TestTokenSimilarity_EmptyTexts(t *testing.T) {
	s := tokenScorer()

	if got := s.Similarity("", ""); !approx(got, 1.0) {
		t.Errorf("Similarity(\"\", \"\") = %v, want 1.0", got)
	}
	// Stop-words normalize away, leaving both sides empty.
	if got := s.Similarity("ve bir", ""); !approx(got, 1.0) {
		t.Errorf("Similarity(stopwords, \"\") = %v, want 1.0", got)
	}
	if got := s.Similarity("", "yana"); !approx(got, 0.0) {
		t.Errorf("Similarity(\"\", text) = %v, want 0.0", got)
	}
}

func TestSequenceSimilarity_Known(t *testing.T) {
	s := sequenceScorer()

	if got := s.Similarity("yana", "Yana"); !approx(got, 1.0) {
		t.Errorf("Similarity of identical normalized text = %v, want 1.0", got)
	}
	// "yana yana sevdik" (16 runes) inside "yana yana sevdik bazen" (22):
	// 2*16 / (16+22).
	if got := s.Similarity("yana yana sevdik", "Yana yana sevdik bazen"); !approx(got, 32.0/38.0) {
		t.Errorf("Similarity = %v, want 32/38", got)
	}
	// "abc" vs "abd": longest block "ab", nothing after, 2*2 / 6.
	if got := s.Similarity("abc", "abd"); !approx(got, 4.0/6.0) {
		t.Errorf("Similarity = %v, want 4/6", got)
	}
}

func TestSequenceSimilarity_Symmetric(t *testing.T) {
	s := sequenceScorer()

	a := s.Similarity("unutulup gidenin", "gidenin ardından")
	b := s.Similarity("gidenin ardından", "unutulup gidenin")
	if !approx(a, b) {
		t.Errorf("similarity not symmetric: %v vs %v", a, b)
	}
	if a <= 0 || a >= 1 {
		t.Errorf("similarity of overlapping texts = %v, want within (0, 1)", a)
	}
}

func TestSimilarity_StrategySelection(t *testing.T) {
	norm := NewNormalizer(DefaultStopwords)

	// Reordered tokens: identical as a set, different as a sequence.
	token := NewScorer(StrategyTokenSet, norm).Similarity("yana sevdik", "sevdik yana")
	seq := NewScorer(StrategyCharSequence, norm).Similarity("yana sevdik", "sevdik yana")
	if !approx(token, 1.0) {
		t.Errorf("token-set similarity = %v, want 1.0", token)
	}
	if seq >= 1.0 {
		t.Errorf("char-sequence similarity = %v, want < 1.0", seq)
	}

	// Unknown strategy falls back to char-sequence.
	def := NewScorer("", norm).Similarity("yana sevdik", "sevdik yana")
	if !approx(def, seq) {
		t.Errorf("default strategy similarity = %v, want char-sequence %v", def, seq)
	}
}

func TestLongestCommonBlock_EarliestOnTies(t *testing.T) {
	// Two common blocks of length 1; the earlier pair must win.
	ai, bi, size := longestCommonBlock([]rune("ab"), []rune("ba"))
	if size != 1 {
		t.Fatalf("block size = %d, want 1", size)
	}
	if ai != 0 || bi != 1 {
		t.Errorf("block at (%d, %d), want earliest (0, 1)", ai, bi)
	}
}
