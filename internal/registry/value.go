package registry

import "strings"

// referencePrefix marks a string value as an alias for another record
// in the merged namespace.
const referencePrefix = "@"

// node is the tagged form a raw document value takes inside the
// registry: references are identified once at load time instead of
// being string-sniffed at every access.
type node interface{ isNode() }

type literal struct{ v any }

type reference struct{ target string }

type mapping map[string]node

type sequence []node

func (literal) isNode()   {}
func (reference) isNode() {}
func (mapping) isNode()   {}
func (sequence) isNode()  {}

// encode tags a decoded YAML value. Strings beginning with "@" become
// references; maps and sequences are tagged recursively.
func encode(v any) node {
	switch t := v.(type) {
	case string:
		if target, ok := strings.CutPrefix(t, referencePrefix); ok {
			return reference{target: target}
		}
		return literal{v: t}
	case map[string]any:
		m := make(mapping, len(t))
		for k, val := range t {
			m[k] = encode(val)
		}
		return m
	case []any:
		s := make(sequence, len(t))
		for i, val := range t {
			s[i] = encode(val)
		}
		return s
	default:
		return literal{v: v}
	}
}
