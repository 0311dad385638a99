package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/reroute/internal/common"
)

// CategoryRules is the persisted form of one category's keyword list.
type CategoryRules struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet is the persisted keyword configuration.
type RuleSet struct {
	Categories []CategoryRules `yaml:"categories"`
}

// RuleStore persists the keyword configuration.
type RuleStore interface {
	Save(rs RuleSet) error
	Load() (RuleSet, error)
}

// FileStore is a YAML-backed RuleStore. Saves are whole-file rewrites through
// a temp file plus rename, so a crashed save never leaves a half-written rule
// file. Concurrent writers from separate processes can still race; the tool
// assumes one supervisor per rule file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save overwrites the rule file with the given rule set.
func (s *FileStore) Save(rs RuleSet) error {
	data, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("failed to marshal rule set: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create rules directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".rules-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp rule file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write rule file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close rule file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace rule file: %w", err)
	}
	return nil
}

// Load reads the rule file. A missing file is not an error; it yields an
// empty rule set so defaults stand unmodified.
func (s *FileStore) Load() (RuleSet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return RuleSet{}, nil
	}
	if err != nil {
		return RuleSet{}, fmt.Errorf("failed to read rule file: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("%w: %v", common.ErrInvalidRuleFile, err)
	}
	return rs, nil
}
