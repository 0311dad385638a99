package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/reroute/internal/tokenize"
)

func TestCategory_AddKeyword(t *testing.T) {
	tests := []struct {
		name  string
		seeds []string
		add   []string
		want  []string
	}{
		{
			name: "normalizes case and whitespace",
			add:  []string{"  Buy ", "SELL"},
			want: []string{"buy", "sell"},
		},
		{
			name:  "idempotent",
			seeds: []string{"buy"},
			add:   []string{"buy", "BUY", " buy "},
			want:  []string{"buy"},
		},
		{
			name: "ignores empty and whitespace-only words",
			add:  []string{"", "   ", "stock"},
			want: []string{"stock"},
		},
		{
			name:  "preserves insertion order",
			seeds: []string{"zeta", "alpha"},
			add:   []string{"mid"},
			want:  []string{"zeta", "alpha", "mid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := NewCategory("Trading", tt.seeds...)
			for _, w := range tt.add {
				cat.AddKeyword(w)
			}
			assert.Equal(t, tt.want, cat.Keywords())
		})
	}
}

func TestCategory_AddKeyword_ReportsAddition(t *testing.T) {
	cat := NewCategory("Trading")

	assert.True(t, cat.AddKeyword("buy"))
	assert.False(t, cat.AddKeyword("buy"), "second add is a no-op")
	assert.False(t, cat.AddKeyword("  "))
}

func TestCategory_Score(t *testing.T) {
	cat := NewCategory("Trading", "buy", "sell", "stock")

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "two keywords present", text: "I need to buy stock", want: 2},
		{name: "no keywords present", text: "tell me a joke", want: 0},
		{name: "duplicates count once", text: "buy buy buy", want: 1},
		{name: "no substring matches", text: "buyer stockpile", want: 0},
		{name: "empty text", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize.NewSet(tokenize.Tokenize(tt.text))
			assert.Equal(t, tt.want, cat.Score(tokens))
		})
	}
}

func TestCategory_KeywordsReturnsCopy(t *testing.T) {
	cat := NewCategory("Trading", "buy")

	kws := cat.Keywords()
	kws[0] = "mutated"

	assert.Equal(t, []string{"buy"}, cat.Keywords())
}

func TestNewCategory_TrimsName(t *testing.T) {
	cat := NewCategory("  Trading  ")
	assert.Equal(t, "Trading", cat.Name())
}
