// Package document parses a single environment file: a YAML mapping
// from dotted setting path to record, with an optional includes list.
package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ReservedIncludesKey is the top-level key naming files whose entries
// are merged into the namespace before this document's own entries.
const ReservedIncludesKey = "includes"

// Entry is one top-level dotted-path declaration. Order matters:
// later entries in the load sequence replace earlier ones wholesale.
type Entry struct {
	Path  string
	Value any
	Line  int
}

// Document is one parsed environment file.
type Document struct {
	Name     string
	Includes []string
	Entries  []Entry
}

// Parse decodes data as a mapping of dotted paths to records. A
// duplicate top-level key or a malformed includes list is an error
// naming the document and the offending key.
func Parse(name string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	doc := &Document{Name: name}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty file: a valid document contributing nothing.
		return doc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: top level must be a mapping, got %s at line %d",
			name, nodeKind(mapping), mapping.Line)
	}

	seen := make(map[string]int, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]

		key := keyNode.Value
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%s: duplicate key %q at line %d (first defined at line %d)",
				name, key, keyNode.Line, prev)
		}
		seen[key] = keyNode.Line

		if key == ReservedIncludesKey {
			includes, err := parseIncludes(name, valNode)
			if err != nil {
				return nil, err
			}
			doc.Includes = includes
			continue
		}

		var value any
		if err := valNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", name, key, err)
		}
		doc.Entries = append(doc.Entries, Entry{Path: key, Value: value, Line: keyNode.Line})
	}

	return doc, nil
}

func parseIncludes(name string, node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s: includes must be a sequence, got %s at line %d",
			name, nodeKind(node), node.Line)
	}
	includes := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, fmt.Errorf("%s: includes entries must be strings (line %d)", name, item.Line)
		}
		includes = append(includes, item.Value)
	}
	return includes, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
