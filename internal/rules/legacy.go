package rules

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLegacy reads the line-oriented rule format of the original tool
// (one "Name:kw1,kw2" line per category). The format has no escaping, so
// names and keywords containing colons or commas cannot round-trip; it is
// supported for import only.
func LoadLegacy(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("failed to open legacy rule file: %w", err)
	}
	defer f.Close()

	var rs RuleSet
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, kws, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		cr := CategoryRules{Name: strings.TrimSpace(name)}
		for _, kw := range strings.Split(kws, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				cr.Keywords = append(cr.Keywords, kw)
			}
		}
		rs.Categories = append(rs.Categories, cr)
	}
	if err := scanner.Err(); err != nil {
		return RuleSet{}, fmt.Errorf("failed to read legacy rule file: %w", err)
	}
	return rs, nil
}
