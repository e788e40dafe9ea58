// Package location models external location records: declarations of
// where a versioned app or engine package is fetched from. Records
// are immutable once declared.
package location

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Descriptor types understood by the external framework.
const (
	TypeAppStore = "app_store"
	TypeGit      = "git"
	TypeDev      = "dev"
	TypePath     = "path"
)

// Record describes how to fetch or locate one external app/engine.
type Record struct {
	Type    string `validate:"required,oneof=app_store git dev path"`
	Name    string `validate:"required_if=Type app_store"`
	Version string `validate:"required_if=Type app_store,required_if=Type git"`
	Path    string `validate:"required_if=Type git,required_if=Type dev,required_if=Type path"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FromValue decodes a resolved setting value into a Record and
// validates it. The value must be a mapping of string fields.
func FromValue(v any) (Record, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Record{}, fmt.Errorf("location must be a mapping, got %T", v)
	}
	var rec Record
	for key, raw := range m {
		s, ok := raw.(string)
		if !ok {
			return Record{}, fmt.Errorf("location field %q must be a string, got %T", key, raw)
		}
		switch key {
		case "type":
			rec.Type = s
		case "name":
			rec.Name = s
		case "version":
			rec.Version = s
		case "path":
			rec.Path = s
		default:
			return Record{}, fmt.Errorf("location field %q is not recognised", key)
		}
	}
	if err := validate.Struct(&rec); err != nil {
		return Record{}, fmt.Errorf("invalid location record: %w", err)
	}
	return rec, nil
}

// String renders the record in descriptor form, e.g.
// "app_store:tk-multi-workfiles2@v0.13.5" or "dev:/path/to/app".
func (r Record) String() string {
	switch r.Type {
	case TypeAppStore:
		return fmt.Sprintf("%s:%s@%s", r.Type, r.Name, r.Version)
	case TypeGit:
		return fmt.Sprintf("%s:%s@%s", r.Type, r.Path, r.Version)
	default:
		return fmt.Sprintf("%s:%s", r.Type, r.Path)
	}
}
