package rules

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore simulates an unavailable rule file.
type failingStore struct{}

func (failingStore) Save(RuleSet) error { return errors.New("disk full") }

func (failingStore) Load() (RuleSet, error) { return RuleSet{}, errors.New("disk on fire") }

func TestNewRouter_MergesPersistedKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	store := NewFileStore(path)
	require.NoError(t, store.Save(RuleSet{Categories: []CategoryRules{
		{Name: "Trading", Keywords: []string{"etf"}},
		{Name: "Crypto", Keywords: []string{"bitcoin"}},
	}}))

	router := NewRouter(store)

	assert.Contains(t, router.Category("Trading").Keywords(), "etf")
	assert.Nil(t, router.Category("Crypto"), "persisted unknown categories stay ignored")
}

func TestRouter_ModifyKeywordsPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	router := NewRouter(NewFileStore(path))

	added, ok := router.ModifyKeywords("Tax", "w2, estimated")
	require.True(t, ok)
	assert.Equal(t, []string{"w2", "estimated"}, added)

	// A fresh router against the same file sees the additions.
	reloaded := NewRouter(NewFileStore(path))
	kws := reloaded.Category("Tax").Keywords()
	assert.Contains(t, kws, "w2")
	assert.Contains(t, kws, "estimated")
}

func TestRouter_ModifyKeywordsUnknownCategory(t *testing.T) {
	router := NewRouter(nil)

	added, ok := router.ModifyKeywords("Lending", "mortgage")
	assert.False(t, ok)
	assert.Nil(t, added)
}

func TestRouter_StoreFailuresDoNotCorruptState(t *testing.T) {
	router := NewRouter(failingStore{})

	// Load failed: defaults stand.
	assert.Len(t, router.Categories(), 4)

	// Save fails, but the in-memory mutation still lands and the boolean
	// contract holds.
	added, ok := router.ModifyKeywords("Trading", "etf")
	assert.True(t, ok)
	assert.Equal(t, []string{"etf"}, added)
	assert.Contains(t, router.Category("Trading").Keywords(), "etf")
}

func TestRouter_NilStore(t *testing.T) {
	router := NewRouter(nil)

	_, ok := router.ModifyKeywords("Service", "pin")
	assert.True(t, ok)
	assert.Contains(t, router.Category("Service").Keywords(), "pin")
}
