// Package tokenize normalizes free text into scoring tokens.
package tokenize

import "strings"

// punctuation is the fixed ASCII punctuation set stripped from input.
// Characters are deleted outright, so contractions collapse ("don't" -> "dont").
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// stopWords are common English function words discarded before scoring.
var stopWords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "you": {}, "your": {},
	"he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "to": {}, "of": {}, "and": {},
	"or": {}, "but": {}, "a": {}, "an": {}, "the": {},
	"in": {}, "on": {}, "at": {}, "for": {}, "with": {},
	"from": {}, "about": {}, "just": {}, "can": {}, "will": {},
	"need": {}, "want": {}, "have": {}, "do": {},
}

// Set is a containment view over tokens. Duplicate tokens in the source text
// collapse, so scoring counts keyword presence, not frequency.
type Set map[string]struct{}

// Contains reports whether the token appears in the set.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Tokenize lowercases the text, strips punctuation, splits on whitespace,
// and drops stop words. Empty or whitespace-only input yields no tokens.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(text))

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// NewSet builds a containment set from a token sequence.
func NewSet(tokens []string) Set {
	set := make(Set, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
