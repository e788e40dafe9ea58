package workfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assetStepRecord() map[string]any {
	return map[string]any{
		"template_work": "clarisse_asset_work",
		"entities": []any{
			map[string]any{
				"caption":     "Assets",
				"entity_type": "Task",
				"filters": []any{
					[]any{"entity", "type_is", "Asset"},
				},
				"hierarchy": []any{"entity.Asset.sg_asset_type", "entity", "step", "content"},
			},
		},
	}
}

func TestViewsFromRecord(t *testing.T) {
	t.Parallel()

	views, err := ViewsFromRecord("settings.tk-multi-workfiles2.clarisse.asset_step", assetStepRecord())
	require.NoError(t, err)

	require.Len(t, views, 1)
	view := views[0]
	assert.Equal(t, "Assets", view.Caption)
	assert.Equal(t, "Task", view.EntityType)
	assert.Equal(t, []string{"entity.Asset.sg_asset_type", "entity", "step", "content"}, view.Hierarchy)

	require.Len(t, view.Filters, 1)
	assert.Equal(t, FilterClause{Field: "entity", Operator: "type_is", Value: "Asset"}, view.Filters[0])
}

func TestViewsFromRecordWithoutEntities(t *testing.T) {
	t.Parallel()

	views, err := ViewsFromRecord("settings.app", map[string]any{"template_work": "x"})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestViewsFromRecordErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		record  map[string]any
		name    string
		wantErr string
	}{
		{
			name:    "entities not a sequence",
			record:  map[string]any{"entities": "nope"},
			wantErr: "entities must be a sequence",
		},
		{
			name:    "view not a mapping",
			record:  map[string]any{"entities": []any{"nope"}},
			wantErr: "must be a mapping",
		},
		{
			name: "missing caption",
			record: map[string]any{"entities": []any{
				map[string]any{"entity_type": "Task", "hierarchy": []any{"entity"}},
			}},
			wantErr: "caption must be a string",
		},
		{
			name: "missing hierarchy",
			record: map[string]any{"entities": []any{
				map[string]any{"caption": "Assets", "entity_type": "Task"},
			}},
			wantErr: "hierarchy",
		},
		{
			name: "filter not a 3-tuple",
			record: map[string]any{"entities": []any{
				map[string]any{
					"caption":     "Assets",
					"entity_type": "Task",
					"hierarchy":   []any{"entity"},
					"filters":     []any{[]any{"entity", "type_is"}},
				},
			}},
			wantErr: "3-tuple",
		},
		{
			name: "filter field not a string",
			record: map[string]any{"entities": []any{
				map[string]any{
					"caption":     "Assets",
					"entity_type": "Task",
					"hierarchy":   []any{"entity"},
					"filters":     []any{[]any{1, "type_is", "Asset"}},
				},
			}},
			wantErr: "field must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ViewsFromRecord("settings.app", tt.record)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "settings.app")
		})
	}
}
