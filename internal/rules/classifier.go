package rules

import (
	"strings"

	"github.com/Veraticus/reroute/internal/tokenize"
)

// NoMatch is the designated outcome when no category scores above zero.
// It is a computed fallback, not a category: it cannot gain keywords and
// never appears in the category list.
const NoMatch = "Uncertain"

// Prediction is the result of routing one piece of text.
type Prediction struct {
	Category string
	Score    int
}

// IsNoMatch reports whether no rule placed the text.
func (p Prediction) IsNoMatch() bool {
	return p.Category == NoMatch
}

// Classifier owns the category set and routes free text to the
// highest-scoring category. The category set is fixed at construction;
// only keywords may grow afterwards.
//
// Categories are held in an ordered slice so that ties resolve
// deterministically to the earliest-constructed category.
type Classifier struct {
	index      map[string]*Category
	categories []*Category
}

// NewClassifier creates a classifier from an ordered list of categories.
// Categories with empty or duplicate names are skipped.
func NewClassifier(categories ...*Category) *Classifier {
	c := &Classifier{index: make(map[string]*Category, len(categories))}
	for _, cat := range categories {
		if cat == nil || cat.Name() == "" {
			continue
		}
		if _, exists := c.index[cat.Name()]; exists {
			continue
		}
		c.categories = append(c.categories, cat)
		c.index[cat.Name()] = cat
	}
	return c
}

// Predict tokenizes the text, scores every category, and returns the winner.
// A zero maximum score (or an empty category set) yields the NoMatch outcome.
// Ties at the maximum resolve to the first category in construction order.
func (c *Classifier) Predict(text string) Prediction {
	tokens := tokenize.NewSet(tokenize.Tokenize(text))

	best := Prediction{Category: NoMatch, Score: 0}
	for _, cat := range c.categories {
		if score := cat.Score(tokens); score > best.Score {
			best = Prediction{Category: cat.Name(), Score: score}
		}
	}
	return best
}

// ModifyKeywords splits the comma-separated input, trims each piece, and adds
// every non-empty piece to the named category. It returns false when the
// category does not exist and true otherwise, even when no valid keyword
// remained after trimming. It returns the keywords actually added, for
// auditing.
func (c *Classifier) ModifyKeywords(name, commaSeparated string) (added []string, ok bool) {
	cat, exists := c.index[name]
	if !exists {
		return nil, false
	}

	for _, piece := range strings.Split(commaSeparated, ",") {
		word := strings.TrimSpace(piece)
		if word == "" {
			continue
		}
		if cat.AddKeyword(word) {
			added = append(added, strings.ToLower(word))
		}
	}
	return added, true
}

// Category returns the named category, or nil if it does not exist.
func (c *Classifier) Category(name string) *Category {
	return c.index[name]
}

// Categories returns the categories in construction order.
func (c *Classifier) Categories() []*Category {
	out := make([]*Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Snapshot captures the current rule set for persistence.
func (c *Classifier) Snapshot() RuleSet {
	rs := RuleSet{Categories: make([]CategoryRules, 0, len(c.categories))}
	for _, cat := range c.categories {
		rs.Categories = append(rs.Categories, CategoryRules{
			Name:     cat.Name(),
			Keywords: cat.Keywords(),
		})
	}
	return rs
}

// Merge folds a persisted rule set into the classifier. Keywords merge
// additively into existing categories; persisted names that match no
// category are ignored (the category set never grows at load time).
// It returns the names that were skipped.
func (c *Classifier) Merge(rs RuleSet) (skipped []string) {
	for _, cr := range rs.Categories {
		cat, exists := c.index[cr.Name]
		if !exists {
			skipped = append(skipped, cr.Name)
			continue
		}
		for _, kw := range cr.Keywords {
			cat.AddKeyword(kw)
		}
	}
	return skipped
}
