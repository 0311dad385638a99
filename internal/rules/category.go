// Package rules implements the keyword-scoring router that re-evaluates
// low-confidence intent classifications.
package rules

import (
	"strings"

	"github.com/Veraticus/reroute/internal/tokenize"
)

// Category is one destination routing label and its keyword list.
// The keyword list is deduplicated and keeps insertion order; mutation
// happens only through AddKeyword.
type Category struct {
	name     string
	keywords []string
	present  map[string]struct{}
}

// NewCategory creates a category with the given seed keywords.
// Seeds pass through AddKeyword, so they are normalized and deduplicated.
func NewCategory(name string, seeds ...string) *Category {
	c := &Category{
		name:    strings.TrimSpace(name),
		present: make(map[string]struct{}),
	}
	for _, kw := range seeds {
		c.AddKeyword(kw)
	}
	return c
}

// Name returns the category's routing label.
func (c *Category) Name() string {
	return c.name
}

// AddKeyword normalizes the word (lowercase, trim) and appends it if it is
// non-empty and not already present. Adding an existing keyword is a no-op,
// so the operation is idempotent. It reports whether the keyword was added.
func (c *Category) AddKeyword(word string) bool {
	clean := strings.ToLower(strings.TrimSpace(word))
	if clean == "" {
		return false
	}
	if _, ok := c.present[clean]; ok {
		return false
	}
	c.present[clean] = struct{}{}
	c.keywords = append(c.keywords, clean)
	return true
}

// Score counts how many of the category's keywords appear as whole tokens.
// Containment is exact-token match, never substring.
func (c *Category) Score(tokens tokenize.Set) int {
	score := 0
	for _, kw := range c.keywords {
		if tokens.Contains(kw) {
			score++
		}
	}
	return score
}

// Keywords returns the ordered keyword list. The slice is a copy; mutate the
// category only through AddKeyword.
func (c *Category) Keywords() []string {
	out := make([]string, len(c.keywords))
	copy(out, c.keywords)
	return out
}
