// Package registry loads pipeline environment documents into a single
// merged namespace of dotted setting paths. Includes are resolved at
// load time; @-references are resolved lazily on first access so that
// forward declarations within one load pass work. After Load the
// registry is read-only.
package registry

import (
	"sort"
	"sync"

	"github.com/spf13/afero"
)

type entry struct {
	value node
	doc   string
	line  int
}

// Registry is the merged, resolvable namespace. Safe for concurrent
// reads; there is no write path after Load.
type Registry struct {
	mu       sync.Mutex
	entries  map[string]entry
	resolved map[string]any
}

// Load reads each source in order, resolves includes and merges all
// top-level entries into one namespace. A path declared by a later
// source replaces the earlier record wholesale; there is no field
// level merge.
func Load(fs afero.Fs, sources ...string) (*Registry, error) {
	l := newLoader(fs)

	r := &Registry{
		entries:  make(map[string]entry),
		resolved: make(map[string]any),
	}
	for _, source := range sources {
		entries, err := l.load(source, "")
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			r.entries[e.Path] = entry{value: encode(e.Value), doc: e.doc, line: e.Line}
		}
	}
	return r, nil
}

// Get returns the fully resolved record at path. References are
// resolved on first access and cached.
func (r *Registry) Get(path string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(path, make(map[string]bool))
}

// Record returns the record at path as a mapping. A record that
// resolves to anything other than a mapping yields a NotFoundError:
// the caller asked for a setting record, not a bare value.
func (r *Registry) Record(path string) (map[string]any, error) {
	v, err := r.Get(path)
	if err != nil {
		return nil, err
	}
	record, ok := v.(map[string]any)
	if !ok {
		return nil, &NotFoundError{Path: path}
	}
	return record, nil
}

// Paths returns every dotted path in the merged namespace, sorted.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.entries))
	for path := range r.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Source reports which document declared path and on which line.
func (r *Registry) Source(path string) (doc string, line int, ok bool) {
	e, ok := r.entries[path]
	if !ok {
		return "", 0, false
	}
	return e.doc, e.line, true
}

// Resolve forces eager resolution of every record, returning the
// first failure. validate and cache-apps run this so a broken
// reference is reported before any session depends on the namespace.
func (r *Registry) Resolve() error {
	for _, path := range r.Paths() {
		if _, err := r.Get(path); err != nil {
			return err
		}
	}
	return nil
}

// resolve looks up path and substitutes references, tracking the set
// of paths currently being resolved to detect cycles. Callers hold
// r.mu.
func (r *Registry) resolve(path string, visiting map[string]bool) (any, error) {
	if v, ok := r.resolved[path]; ok {
		return v, nil
	}
	e, ok := r.entries[path]
	if !ok {
		return nil, &NotFoundError{Path: path}
	}
	if visiting[path] {
		return nil, &ReferenceError{Record: path, Target: path, Cycle: true}
	}
	visiting[path] = true
	defer delete(visiting, path)

	v, err := r.resolveNode(path, e.value, visiting)
	if err != nil {
		return nil, err
	}
	r.resolved[path] = v
	return v, nil
}

func (r *Registry) resolveNode(record string, n node, visiting map[string]bool) (any, error) {
	switch t := n.(type) {
	case literal:
		return t.v, nil
	case reference:
		if visiting[t.target] {
			return nil, &ReferenceError{Record: record, Target: t.target, Cycle: true}
		}
		if _, ok := r.entries[t.target]; !ok {
			return nil, &ReferenceError{Record: record, Target: t.target}
		}
		return r.resolve(t.target, visiting)
	case mapping:
		out := make(map[string]any, len(t))
		for k, child := range t {
			v, err := r.resolveNode(record, child, visiting)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case sequence:
		out := make([]any, len(t))
		for i, child := range t {
			v, err := r.resolveNode(record, child, visiting)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, nil
	}
}
