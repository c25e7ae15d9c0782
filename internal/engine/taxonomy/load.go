package taxonomy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a taxonomy from YAML. The document must be a sequence of
// single-pair mappings so that category order — the tie-break contract —
// survives parsing:
//
//	- Web: [web, http, html]
//	- Mobile: [android, ios]
//
// Triggers are lowercased on load; embedded and trailing spaces are kept.
func Load(data []byte) (Taxonomy, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("taxonomy: parse: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("taxonomy: empty document")
	}

	doc := root.Content[0]
	if doc.Kind != yaml.SequenceNode {
		return nil, errors.New("taxonomy: document must be a sequence of single-pair mappings")
	}

	tax := make(Taxonomy, 0, len(doc.Content))
	for _, item := range doc.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return nil, fmt.Errorf("taxonomy: line %d: each entry must be a single \"label: [triggers]\" pair", item.Line)
		}
		label := item.Content[0].Value
		if label == "" {
			return nil, fmt.Errorf("taxonomy: line %d: empty category label", item.Line)
		}

		var triggers []string
		if err := item.Content[1].Decode(&triggers); err != nil {
			return nil, fmt.Errorf("taxonomy: category %q: %w", label, err)
		}
		if len(triggers) == 0 {
			return nil, fmt.Errorf("taxonomy: category %q has no triggers", label)
		}
		for i, trig := range triggers {
			if trig == "" {
				return nil, fmt.Errorf("taxonomy: category %q has an empty trigger", label)
			}
			triggers[i] = strings.ToLower(trig)
		}
		tax = append(tax, Category{Label: label, Triggers: triggers})
	}
	return tax, nil
}

// LoadFile reads and parses a taxonomy YAML file.
func LoadFile(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	return Load(data)
}
