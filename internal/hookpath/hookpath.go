// Package hookpath models hook fields: colon-delimited chains of
// candidate script paths rooted at the {self} or {engine} hook
// directories. Resolution is first-existing-candidate.
package hookpath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Placeholder roots a candidate at a hook directory the framework
// supplies at resolution time.
type Placeholder string

const (
	// Self is this configuration's own hook directory.
	Self Placeholder = "{self}"
	// Engine is the referenced engine's hook directory.
	Engine Placeholder = "{engine}"
)

// Candidate is one entry in a hook chain: a placeholder root plus a
// relative script path beneath it.
type Candidate struct {
	Root Placeholder
	Rel  string
}

// Expand joins the candidate onto the directory the framework mapped
// its placeholder to.
func (c Candidate) Expand(roots map[Placeholder]string) string {
	return filepath.Join(roots[c.Root], filepath.FromSlash(c.Rel))
}

func (c Candidate) String() string {
	return string(c.Root) + "/" + c.Rel
}

// Chain is an ordered sequence of candidates.
type Chain []Candidate

// Parse splits a hook field into its candidates. Every candidate must
// start with a known placeholder followed by a relative path.
func Parse(field string) (Chain, error) {
	if field == "" {
		return nil, fmt.Errorf("empty hook expression")
	}
	parts := strings.Split(field, ":")
	chain := make(Chain, 0, len(parts))
	for _, part := range parts {
		candidate, err := parseCandidate(part)
		if err != nil {
			return nil, fmt.Errorf("hook expression %q: %w", field, err)
		}
		chain = append(chain, candidate)
	}
	return chain, nil
}

func parseCandidate(part string) (Candidate, error) {
	for _, root := range []Placeholder{Self, Engine} {
		rest, ok := strings.CutPrefix(part, string(root))
		if !ok {
			continue
		}
		rel, ok := strings.CutPrefix(rest, "/")
		if !ok || rel == "" {
			return Candidate{}, fmt.Errorf("candidate %q: expected a path after %s", part, root)
		}
		return Candidate{Root: root, Rel: rel}, nil
	}
	return Candidate{}, fmt.Errorf("candidate %q: must start with %s or %s", part, Self, Engine)
}

// NotFoundError reports a chain none of whose candidates exist.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no hook candidate exists, tried: %s", strings.Join(e.Tried, ", "))
}

// Resolve expands each candidate against roots and returns the first
// one that exists on fs.
func (c Chain) Resolve(fs afero.Fs, roots map[Placeholder]string) (string, error) {
	tried := make([]string, 0, len(c))
	for _, candidate := range c {
		path := candidate.Expand(roots)
		if exists, err := afero.Exists(fs, path); err != nil {
			return "", fmt.Errorf("checking hook candidate %s: %w", path, err)
		} else if exists {
			return path, nil
		}
		tried = append(tried, path)
	}
	return "", &NotFoundError{Tried: tried}
}
