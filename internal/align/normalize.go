package align

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultStopwords is the Turkish stop-word set dropped during
// tokenization.
var DefaultStopwords = []string{"ve", "bir", "bu", "da", "de", "ile", "için", "var", "yok"}

// Normalizer canonicalizes text for similarity comparison. It is not safe
// for concurrent use; build one per alignment call.
type Normalizer struct {
	lower     cases.Caser
	stopwords map[string]bool
}

// NewNormalizer creates a normalizer with the given stop-word set. A nil
// set disables stop-word filtering.
func NewNormalizer(stopwords []string) *Normalizer {
	stop := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		stop[w] = true
	}
	return &Normalizer{
		lower:     cases.Lower(language.Turkish),
		stopwords: stop,
	}
}

// Normalize lowercases text with Turkish casing rules (İ→i, I→ı), strips
// every rune that is not a letter, digit or whitespace, and collapses
// whitespace runs to single spaces. Empty input yields empty output.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range n.lower.String(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens normalizes text, splits it on whitespace and drops stop-words.
func (n *Normalizer) Tokens(text string) []string {
	var tokens []string
	for _, f := range strings.Fields(n.Normalize(text)) {
		if !n.stopwords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
