// Package workfiles decodes the file-open/save app's entity view
// definitions: named tree views built from an entity type, filter
// clauses and a display hierarchy.
package workfiles

import "fmt"

// FilterClause is one filter 3-tuple: field, operator, value.
type FilterClause struct {
	Field    string
	Operator string
	Value    any
}

// View is a named entity view: which entity type to show, which
// filters constrain it, and the field order the tree is built from.
type View struct {
	Caption    string
	EntityType string
	Filters    []FilterClause
	Hierarchy  []string
}

// ViewsFromRecord decodes the "entities" field of a workfiles setting
// record. record is the resolved record; path names it in errors.
func ViewsFromRecord(path string, record map[string]any) ([]View, error) {
	raw, ok := record["entities"]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: entities must be a sequence, got %T", path, raw)
	}

	views := make([]View, 0, len(list))
	for i, item := range list {
		view, err := decodeView(item)
		if err != nil {
			return nil, fmt.Errorf("%s: entities[%d]: %w", path, i, err)
		}
		views = append(views, view)
	}
	return views, nil
}

func decodeView(item any) (View, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return View{}, fmt.Errorf("must be a mapping, got %T", item)
	}

	var view View
	if view.Caption, ok = m["caption"].(string); !ok {
		return View{}, fmt.Errorf("caption must be a string")
	}
	if view.EntityType, ok = m["entity_type"].(string); !ok {
		return View{}, fmt.Errorf("entity_type must be a string")
	}

	hierarchy, err := decodeStrings(m["hierarchy"])
	if err != nil {
		return View{}, fmt.Errorf("hierarchy: %w", err)
	}
	view.Hierarchy = hierarchy

	if rawFilters, ok := m["filters"]; ok {
		filters, err := decodeFilters(rawFilters)
		if err != nil {
			return View{}, err
		}
		view.Filters = filters
	}
	return view, nil
}

func decodeFilters(raw any) ([]FilterClause, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("filters must be a sequence, got %T", raw)
	}
	filters := make([]FilterClause, 0, len(list))
	for i, item := range list {
		tuple, ok := item.([]any)
		if !ok || len(tuple) != 3 {
			return nil, fmt.Errorf("filters[%d]: must be a [field, operator, value] 3-tuple", i)
		}
		field, ok := tuple[0].(string)
		if !ok {
			return nil, fmt.Errorf("filters[%d]: field must be a string", i)
		}
		operator, ok := tuple[1].(string)
		if !ok {
			return nil, fmt.Errorf("filters[%d]: operator must be a string", i)
		}
		filters = append(filters, FilterClause{Field: field, Operator: operator, Value: tuple[2]})
	}
	return filters, nil
}

func decodeStrings(raw any) ([]string, error) {
	if raw == nil {
		return nil, fmt.Errorf("is required")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a sequence, got %T", raw)
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("[%d] must be a string, got %T", i, item)
		}
		out = append(out, s)
	}
	return out, nil
}
