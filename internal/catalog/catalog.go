// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog extracts agent entries from the agent README.
//
// The source grammar is deliberately narrow: "### " headings select one of a
// fixed list of categories, and "- **[Name](link)** - Description" list items
// under a selected category become entries. Everything else is ignored.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Category is one of the fixed top-level groupings of agents.
type Category string

const (
	DevelopmentArchitecture  Category = "Development & Architecture"
	LanguageSpecialists      Category = "Language Specialists"
	InfrastructureOperations Category = "Infrastructure & Operations"
	QualitySecurity          Category = "Quality & Security"
	DataAI                   Category = "Data & AI"
	SpecializedDomains       Category = "Specialized Domains"
	Documentation            Category = "Documentation"
	BusinessMarketing        Category = "Business & Marketing"
	SEOContentOptimization   Category = "SEO & Content Optimization"
)

// Categories lists every category in match-precedence and display order.
var Categories = []Category{
	DevelopmentArchitecture,
	LanguageSpecialists,
	InfrastructureOperations,
	QualitySecurity,
	DataAI,
	SpecializedDomains,
	Documentation,
	BusinessMarketing,
	SEOContentOptimization,
}

// Entry is a single agent listed in the README.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Catalog maps every category to its entries in document order. Every
// category in Categories is present, possibly with an empty slice.
type Catalog map[Category][]Entry

// New returns a catalog with an empty entry list for every category.
func New() Catalog {
	c := make(Catalog, len(Categories))
	for _, cat := range Categories {
		c[cat] = []Entry{}
	}
	return c
}

// Len returns the number of entries across all categories.
func (c Catalog) Len() int {
	n := 0
	for _, entries := range c {
		n += len(entries)
	}
	return n
}

const (
	headingPrefix = "### "
	bannerPrefix  = "### 🚀"
	entryPrefix   = "- **["
)

// entryRe splits "- **[Name](link)** - Description" into name and description.
var entryRe = regexp.MustCompile(`^- \*\*\[([^\]]+)\]\([^)]+\)\*\* - (.+)`)

// Load reads the README at path and parses it. When the file does not exist
// Load returns ok == false and a nil error; a missing README is an expected
// state, not a failure.
func Load(path string) (cat Catalog, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading agent source %s: %w", path, err)
	}
	return Parse(string(data)), true, nil
}

// Parse extracts a catalog from README content. Unrecognized headings and
// malformed entry lines are skipped.
func Parse(content string) Catalog {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	c := New()
	var current Category

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, headingPrefix) && !strings.HasPrefix(line, bannerPrefix) {
			if cat, found := matchCategory(line); found {
				current = cat
			}
			continue
		}

		if current == "" {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, entryPrefix) {
			continue
		}
		m := entryRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		c[current] = append(c[current], Entry{Name: m[1], Description: m[2]})
	}

	return c
}

// matchCategory returns the first category, in Categories order, whose name
// appears in the heading line.
func matchCategory(line string) (Category, bool) {
	for _, cat := range Categories {
		if strings.Contains(line, string(cat)) {
			return cat, true
		}
	}
	return "", false
}
