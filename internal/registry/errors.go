package registry

import "fmt"

// ParseError reports a structurally invalid document: malformed
// mapping, duplicate key within a single file, or an unreadable
// top-level source.
type ParseError struct {
	Document string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Document, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IncludeError reports a missing or cyclic include target.
type IncludeError struct {
	Document string // the document whose includes list failed
	Include  string // the include target
	Cycle    bool
	Err      error
}

func (e *IncludeError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("include cycle: %s includes %s, which is already being loaded", e.Document, e.Include)
	}
	return fmt.Sprintf("cannot resolve include %s from %s: %v", e.Include, e.Document, e.Err)
}

func (e *IncludeError) Unwrap() error { return e.Err }

// ReferenceError reports a missing or cyclic @-reference encountered
// while resolving a record.
type ReferenceError struct {
	Record string // dotted path of the record being resolved
	Target string // dotted path the reference names
	Cycle  bool
}

func (e *ReferenceError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("reference cycle while resolving %s: @%s is already being resolved", e.Record, e.Target)
	}
	return fmt.Sprintf("unresolved reference in %s: no record named %s", e.Record, e.Target)
}

// NotFoundError reports a lookup miss against the merged namespace.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no setting record named %s", e.Path)
}
