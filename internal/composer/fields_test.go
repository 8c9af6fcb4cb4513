package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_Accessors(t *testing.T) {
	fields := Fields{
		"title":   "  Precision Parts  ",
		"count":   3,
		"enabled": true,
		"items":   []any{map[string]any{"name": "a"}, "not-a-map"},
		"cta":     map[string]any{"label": "Get Quote"},
	}

	assert.True(t, fields.Has("title"))
	assert.False(t, fields.Has("missing"))
	assert.Equal(t, "  Precision Parts  ", fields.String("title"))
	assert.Equal(t, "Precision Parts", fields.TrimmedString("title"))
	assert.Equal(t, "", fields.String("count"), "non-string values read as empty")
	assert.True(t, fields.Bool("enabled", false))
	assert.True(t, fields.Bool("missing", true))
	assert.Len(t, fields.Slice("items"), 2)
	assert.Len(t, fields.Maps("items"), 1, "non-object array elements are dropped")
	assert.Equal(t, "Get Quote", fields.Map("cta").String("label"))
	assert.Nil(t, fields.Map("title"))
}

func TestMergeDefaults(t *testing.T) {
	tests := []struct {
		name     string
		fields   Fields
		defaults Fields
		want     Fields
	}{
		{
			name:     "fills absent keys",
			fields:   Fields{"title": "Custom"},
			defaults: Fields{"title": "Default", "subtitle": "Sub"},
			want:     Fields{"title": "Custom", "subtitle": "Sub"},
		},
		{
			name:     "explicit empty string wins over default",
			fields:   Fields{"title": ""},
			defaults: Fields{"title": "Default"},
			want:     Fields{"title": ""},
		},
		{
			name:     "explicit nil wins over default",
			fields:   Fields{"title": nil},
			defaults: Fields{"title": "Default"},
			want:     Fields{"title": nil},
		},
		{
			name:     "nil fields take all defaults",
			fields:   nil,
			defaults: Fields{"title": "Default"},
			want:     Fields{"title": "Default"},
		},
		{
			name:     "nil defaults keep fields unchanged",
			fields:   Fields{"title": "Custom"},
			defaults: nil,
			want:     Fields{"title": "Custom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeDefaults(tt.fields, tt.defaults)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeDefaults_DoesNotMutateInputs(t *testing.T) {
	fields := Fields{"a": "1"}
	defaults := Fields{"b": "2"}

	merged := MergeDefaults(fields, defaults)
	merged["c"] = "3"

	assert.Equal(t, Fields{"a": "1"}, fields)
	assert.Equal(t, Fields{"b": "2"}, defaults)
}

func TestFilterDisabled(t *testing.T) {
	fields := Fields{
		"title": "Services",
		"items": []any{
			map[string]any{"name": "milling", "enabled": true},
			map[string]any{"name": "casting", "enabled": false},
			map[string]any{"name": "turning"},
			map[string]any{"name": "welding", "enabled": "false"},
		},
	}

	filtered := FilterDisabled(fields)

	items := filtered.Maps("items")
	require.Len(t, items, 3)
	assert.Equal(t, "milling", items[0].String("name"))
	assert.Equal(t, "turning", items[1].String("name"))
	assert.Equal(t, "welding", items[2].String("name"), "non-boolean enabled keeps the item")

	// Source is untouched.
	assert.Len(t, fields.Maps("items"), 4)
}

func TestFilterDisabled_Nested(t *testing.T) {
	fields := Fields{
		"groups": []any{
			map[string]any{
				"name": "group-a",
				"links": []any{
					map[string]any{"label": "one"},
					map[string]any{"label": "two", "enabled": false},
				},
			},
			map[string]any{"name": "group-b", "enabled": false},
		},
	}

	filtered := FilterDisabled(fields)

	groups := filtered.Maps("groups")
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Maps("links"), 1)
}

func TestFilterDisabled_SectionLevelEnabledKeyIsUntouched(t *testing.T) {
	// Filtering applies to array items only; a top-level enabled flag is the
	// renderer's concern.
	fields := Fields{"enabled": false, "items": []any{map[string]any{"name": "a"}}}

	filtered := FilterDisabled(fields)

	assert.Equal(t, false, filtered["enabled"])
	assert.Len(t, filtered.Maps("items"), 1)
}
