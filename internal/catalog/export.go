// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportGroup holds one category and its agents for export. A slice of groups
// keeps category order, which a map would lose.
type ExportGroup struct {
	Category Category `json:"category" yaml:"category"`
	Agents   []Entry  `json:"agents" yaml:"agents"`
}

// Groups returns the catalog as an ordered slice, one group per category,
// including empty categories.
func (c Catalog) Groups() []ExportGroup {
	groups := make([]ExportGroup, len(Categories))
	for i, cat := range Categories {
		entries := c[cat]
		if entries == nil {
			entries = []Entry{}
		}
		groups[i] = ExportGroup{Category: cat, Agents: entries}
	}
	return groups
}

// WriteYAML writes the catalog to w as YAML.
func WriteYAML(w io.Writer, c Catalog) error {
	data, err := yaml.Marshal(c.Groups())
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes the catalog to w as indented JSON.
func WriteJSON(w io.Writer, c Catalog) error {
	data, err := json.MarshalIndent(c.Groups(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
