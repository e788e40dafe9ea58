package cli

import (
	"fmt"
	"strings"

	"github.com/framewright/pipeconf/internal/hookpath"
	"github.com/framewright/pipeconf/internal/workfiles"
)

// ValidateConfig loads the environment, forces eager resolution of
// every record and checks the reserved fields: hook expressions must
// parse, location records must validate, entity view definitions must
// decode. The first failure is returned verbatim, naming the document
// and path.
func (a *App) ValidateConfig() (string, error) {
	reg, err := a.Registry()
	if err != nil {
		return "", err
	}
	if err := reg.Resolve(); err != nil {
		return "", err
	}

	var hookCount, viewCount int
	for _, path := range reg.Paths() {
		value, err := reg.Get(path)
		if err != nil {
			return "", err
		}
		record, ok := value.(map[string]any)
		if !ok {
			continue
		}

		n, err := validateHookFields(path, "", record)
		if err != nil {
			return "", err
		}
		hookCount += n

		views, err := workfiles.ViewsFromRecord(path, record)
		if err != nil {
			return "", err
		}
		viewCount += len(views)
	}

	locations, err := a.collectLocations(reg)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Environment is valid: %d setting records, %d locations, %d hook chains, %d entity views\n",
		len(reg.Paths()), len(locations), hookCount, viewCount)
	return b.String(), nil
}

// isHookField reports whether a record key holds a hook expression.
// The framework's reserved hook keys are "hook", "collector" and
// anything of the form hook_* or *_hook (hook_scene_operation,
// actions_hook).
func isHookField(key string) bool {
	return key == "hook" || key == "collector" ||
		strings.HasPrefix(key, "hook_") || strings.HasSuffix(key, "_hook")
}

// validateHookFields walks a resolved record and parses every hook
// expression it carries, descending into nested mappings and
// sequences (publish_plugins entries carry their own hook fields).
func validateHookFields(path, at string, value any) (int, error) {
	switch t := value.(type) {
	case map[string]any:
		count := 0
		for key, child := range t {
			childAt := key
			if at != "" {
				childAt = at + "." + key
			}
			if isHookField(key) {
				expr, ok := child.(string)
				if !ok {
					return 0, fmt.Errorf("%s: %s: hook field must be a string, got %T", path, childAt, child)
				}
				if _, err := hookpath.Parse(expr); err != nil {
					return 0, fmt.Errorf("%s: %s: %w", path, childAt, err)
				}
				count++
				continue
			}
			n, err := validateHookFields(path, childAt, child)
			if err != nil {
				return 0, err
			}
			count += n
		}
		return count, nil
	case []any:
		count := 0
		for i, child := range t {
			n, err := validateHookFields(path, fmt.Sprintf("%s[%d]", at, i), child)
			if err != nil {
				return 0, err
			}
			count += n
		}
		return count, nil
	default:
		return 0, nil
	}
}
