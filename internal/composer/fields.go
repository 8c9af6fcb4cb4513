package composer

import "strings"

// Fields is the semi-typed bag of variant-specific content carried by a
// section. Accessors tolerate missing keys and wrong types, returning zero
// values: the CMS shape is trusted only at the collaborator boundary.
type Fields map[string]any

// Has reports whether the key is present, regardless of its value. An
// explicit empty string counts as present.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the value for key if it is a string, else "".
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// TrimmedString returns the string value for key with surrounding whitespace
// removed.
func (f Fields) TrimmedString(key string) string {
	return strings.TrimSpace(f.String(key))
}

// Bool returns the value for key if it is a bool, else def.
func (f Fields) Bool(key string, def bool) bool {
	if b, ok := f[key].(bool); ok {
		return b
	}
	return def
}

// Slice returns the value for key if it is a []any, else nil.
func (f Fields) Slice(key string) []any {
	s, _ := f[key].([]any)
	return s
}

// Maps returns the elements of the array at key that are objects.
func (f Fields) Maps(key string) []Fields {
	raw := f.Slice(key)
	if len(raw) == 0 {
		return nil
	}
	items := make([]Fields, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			items = append(items, Fields(m))
		}
	}
	return items
}

// Map returns the value for key if it is an object, else nil.
func (f Fields) Map(key string) Fields {
	m, _ := f[key].(map[string]any)
	return Fields(m)
}

// MergeDefaults returns a new field bag with defaults filled in for keys
// absent from fields. Present-but-empty values are kept as authored: an
// editor's explicit empty string is never replaced. Neither input is mutated.
func MergeDefaults(fields, defaults Fields) Fields {
	merged := make(Fields, len(fields)+len(defaults))
	for key, value := range fields {
		merged[key] = value
	}
	for key, value := range defaults {
		if _, present := merged[key]; !present {
			merged[key] = value
		}
	}
	return merged
}

// FilterDisabled returns a copy of the field bag with items carrying
// enabled:false removed from every nested array. An absent or non-boolean
// enabled value keeps the item. The input is not mutated.
func FilterDisabled(fields Fields) Fields {
	filtered, _ := filterValue(map[string]any(fields)).(map[string]any)
	return Fields(filtered)
}

func filterValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = filterValue(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				if enabled, isBool := m["enabled"].(bool); isBool && !enabled {
					continue
				}
			}
			out = append(out, filterValue(item))
		}
		return out
	default:
		return value
	}
}
