package registry

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/framewright/pipeconf/internal/document"
)

// loader walks a document and its includes depth-first, yielding
// entries in merge order: included entries first, local entries last.
type loader struct {
	fs         afero.Fs
	inProgress map[string]bool
	done       map[string][]sourcedEntry
}

// sourcedEntry is a document entry annotated with the file that
// declared it, for error reporting and the paths listing.
type sourcedEntry struct {
	document.Entry
	doc string
}

func newLoader(fs afero.Fs) *loader {
	return &loader{
		fs:         fs,
		inProgress: make(map[string]bool),
		done:       make(map[string][]sourcedEntry),
	}
}

// load reads name, resolves its includes recursively and returns all
// entries in merge order. includedBy is empty for top-level sources.
func (l *loader) load(name, includedBy string) ([]sourcedEntry, error) {
	clean := filepath.Clean(name)

	if l.inProgress[clean] {
		return nil, &IncludeError{Document: includedBy, Include: clean, Cycle: true}
	}
	if entries, ok := l.done[clean]; ok {
		// Diamond includes are fine: same entries, same order.
		return entries, nil
	}

	data, err := afero.ReadFile(l.fs, clean)
	if err != nil {
		if includedBy != "" {
			return nil, &IncludeError{Document: includedBy, Include: clean, Err: err}
		}
		return nil, &ParseError{Document: clean, Err: err}
	}

	doc, err := document.Parse(clean, data)
	if err != nil {
		return nil, &ParseError{Document: clean, Err: err}
	}

	l.inProgress[clean] = true
	defer delete(l.inProgress, clean)

	var entries []sourcedEntry
	baseDir := filepath.Dir(clean)
	for _, include := range doc.Includes {
		target := include
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}
		included, err := l.load(target, clean)
		if err != nil {
			return nil, err
		}
		entries = append(entries, included...)
	}

	for _, entry := range doc.Entries {
		entries = append(entries, sourcedEntry{Entry: entry, doc: clean})
	}

	log.Debug().Str("document", clean).Int("includes", len(doc.Includes)).
		Int("entries", len(doc.Entries)).Msg("loaded environment document")

	l.done[clean] = entries
	return entries, nil
}
