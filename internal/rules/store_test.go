package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/reroute/internal/common"
)

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	store := NewFileStore(path)

	in := RuleSet{Categories: []CategoryRules{
		{Name: "Trading", Keywords: []string{"buy", "sell"}},
		{Name: "Tax", Keywords: []string{"1099"}},
	}}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStore_SaveHandlesColonsAndCommas(t *testing.T) {
	// The legacy line format corrupted on these; YAML must round-trip them.
	path := filepath.Join(t.TempDir(), "rules.yaml")
	store := NewFileStore(path)

	in := RuleSet{Categories: []CategoryRules{
		{Name: "Service", Keywords: []string{"login:failed", "a,b"}},
	}}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.yaml"))

	rs, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, rs.Categories)
}

func TestFileStore_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [unterminated"), 0o600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidRuleFile)
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "rules.yaml")
	store := NewFileStore(path)

	require.NoError(t, store.Save(RuleSet{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	store := NewFileStore(path)

	require.NoError(t, store.Save(RuleSet{Categories: []CategoryRules{
		{Name: "Trading", Keywords: []string{"buy", "sell", "stock"}},
	}}))
	require.NoError(t, store.Save(RuleSet{Categories: []CategoryRules{
		{Name: "Trading", Keywords: []string{"buy"}},
	}}))

	out, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, []string{"buy"}, out.Categories[0].Keywords)
}

func TestLoadLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.txt")
	content := "Trading:buy,sell, stock \nTax:1099\n\nnot a rule line\nService:\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rs, err := LoadLegacy(path)
	require.NoError(t, err)
	require.Len(t, rs.Categories, 3)

	assert.Equal(t, "Trading", rs.Categories[0].Name)
	assert.Equal(t, []string{"buy", "sell", "stock"}, rs.Categories[0].Keywords)
	assert.Equal(t, []string{"1099"}, rs.Categories[1].Keywords)
	assert.Equal(t, "Service", rs.Categories[2].Name)
	assert.Empty(t, rs.Categories[2].Keywords)
}

func TestLoadLegacy_MissingFile(t *testing.T) {
	_, err := LoadLegacy(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
