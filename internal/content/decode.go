package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iis-mfg/precision-site/internal/types"
)

// DecodeSections converts a stored JSON section array into the ordered
// section list the composer consumes. Each element is an object carrying a
// "variant" discriminator (or a legacy "_type" such as "heroSection") with
// the remaining keys forming the field bag. Array order is render order.
// Objects without a discriminator are kept with an empty variant so the
// composer can record them as unknown instead of silently dropping content.
func DecodeSections(data []byte) ([]types.Section, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("sections are not a JSON array: %w", err)
	}

	sections := make([]types.Section, 0, len(raw))
	for _, obj := range raw {
		variant, _ := obj["variant"].(string)
		if variant == "" {
			if legacy, ok := obj["_type"].(string); ok {
				variant = variantFromType(legacy)
			}
		}

		fields := make(map[string]any, len(obj))
		for key, value := range obj {
			if key == "variant" || key == "_type" {
				continue
			}
			fields[key] = value
		}
		sections = append(sections, types.Section{Variant: variant, Fields: fields})
	}
	return sections, nil
}

// EncodeSections is the inverse of DecodeSections, used by the seed importer.
func EncodeSections(sections []types.Section) ([]byte, error) {
	raw := make([]map[string]any, 0, len(sections))
	for _, section := range sections {
		obj := make(map[string]any, len(section.Fields)+1)
		for key, value := range section.Fields {
			obj[key] = value
		}
		obj["variant"] = section.Variant
		raw = append(raw, obj)
	}
	return json.Marshal(raw)
}

// variantFromType maps legacy studio type names onto variant discriminators:
// "heroSection" becomes "hero", "richTextSection" becomes "richText".
func variantFromType(typeName string) string {
	return strings.TrimSuffix(typeName, "Section")
}
