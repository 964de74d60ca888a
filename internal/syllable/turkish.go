// Package syllable splits Turkish words into syllables for fine-grained
// timing display. The split follows orthographic rules, not certified
// phonetics: callers should rely on structural guarantees only.
package syllable

import (
	"strings"
	"unicode"
)

const vowels = "aeıioöuüAEIİOÖUÜ"

// Split breaks a word into an ordered sequence of syllables. Punctuation
// is stripped first, so the units concatenate to the cleaned word. The
// rule-based splitter runs first; if it finds fewer than two units, a
// simpler vowel-boundary scan takes over. The result is never empty: a
// word that cannot be split comes back whole.
func Split(word string) []string {
	cleaned := clean(word)
	if cleaned == "" {
		return []string{word}
	}

	if parts := splitByRule(cleaned); len(parts) >= 2 {
		return parts
	}
	if parts := vowelScan(cleaned); len(parts) >= 1 {
		return parts
	}
	return []string{cleaned}
}

// splitByRule applies the standard Turkish syllabification rule: every
// vowel anchors one syllable, a lone consonant between two vowels opens
// the following syllable, of a longer consonant run only the last
// consonant does, and adjacent vowels split between themselves. Leading
// consonants join the first syllable, trailing consonants the last.
func splitByRule(word string) []string {
	runes := []rune(word)

	var vowelAt []int
	for i, r := range runes {
		if isVowel(r) {
			vowelAt = append(vowelAt, i)
		}
	}
	if len(vowelAt) == 0 {
		return []string{word}
	}

	var parts []string
	start := 0
	for k := 1; k < len(vowelAt); k++ {
		boundary := vowelAt[k]
		if vowelAt[k]-vowelAt[k-1] > 1 {
			boundary = vowelAt[k] - 1
		}
		parts = append(parts, string(runes[start:boundary]))
		start = boundary
	}
	parts = append(parts, string(runes[start:]))

	return parts
}

// vowelScan is the bounded fallback: walk runes left to right, close a
// syllable after a vowel followed by a consonant-vowel pair (the consonant
// opens the next syllable), split between adjacent vowels, and attach
// leftover trailing consonants to the last syllable.
func vowelScan(word string) []string {
	runes := []rune(word)

	var parts []string
	var current []rune

	for i, r := range runes {
		current = append(current, r)
		if !isVowel(r) || i+1 >= len(runes) {
			continue
		}
		switch {
		case isVowel(runes[i+1]):
			parts = append(parts, string(current))
			current = nil
		case i+2 < len(runes) && isVowel(runes[i+2]):
			parts = append(parts, string(current))
			current = nil
		}
	}

	if len(current) > 0 {
		if len(parts) > 0 && !containsVowel(current) {
			parts[len(parts)-1] += string(current)
		} else {
			parts = append(parts, string(current))
		}
	}

	return parts
}

func clean(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

func containsVowel(runes []rune) bool {
	for _, r := range runes {
		if isVowel(r) {
			return true
		}
	}
	return false
}
