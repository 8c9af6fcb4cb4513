package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iis-mfg/precision-site/internal/types"
)

func TestDecodeSections_OrderAndFields(t *testing.T) {
	data := []byte(`[
		{"variant": "hero", "title": "Precision CNC", "height": "large"},
		{"variant": "stats", "items": [{"value": "99.8%", "label": "On-time"}]},
		{"variant": "cta"}
	]`)

	sections, err := DecodeSections(data)
	require.NoError(t, err)
	require.Len(t, sections, 3)

	assert.Equal(t, "hero", sections[0].Variant)
	assert.Equal(t, "Precision CNC", sections[0].Fields["title"])
	assert.NotContains(t, sections[0].Fields, "variant", "discriminator is not a field")

	assert.Equal(t, "stats", sections[1].Variant)
	assert.Equal(t, "cta", sections[2].Variant)
	assert.Empty(t, sections[2].Fields)
}

func TestDecodeSections_LegacyTypeDiscriminator(t *testing.T) {
	data := []byte(`[
		{"_type": "heroSection", "title": "Legacy"},
		{"_type": "richTextSection", "content": "<p>hi</p>"},
		{"_type": "statsSection", "variant": "", "items": []}
	]`)

	sections, err := DecodeSections(data)
	require.NoError(t, err)
	require.Len(t, sections, 3)

	assert.Equal(t, "hero", sections[0].Variant)
	assert.Equal(t, "richText", sections[1].Variant)
	assert.Equal(t, "stats", sections[2].Variant, "empty variant falls back to _type")
	assert.NotContains(t, sections[0].Fields, "_type")
}

func TestDecodeSections_MissingDiscriminatorKept(t *testing.T) {
	sections, err := DecodeSections([]byte(`[{"title": "orphan"}]`))
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "", sections[0].Variant)
	assert.Equal(t, "orphan", sections[0].Fields["title"])
}

func TestDecodeSections_Empty(t *testing.T) {
	sections, err := DecodeSections(nil)
	require.NoError(t, err)
	assert.Nil(t, sections)

	sections, err = DecodeSections([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestDecodeSections_Invalid(t *testing.T) {
	_, err := DecodeSections([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestEncodeSections_RoundTrip(t *testing.T) {
	sections := []types.Section{
		{Variant: "hero", Fields: map[string]any{"title": "Precision CNC"}},
		{Variant: "cta", Fields: map[string]any{}},
	}

	data, err := EncodeSections(sections)
	require.NoError(t, err)

	decoded, err := DecodeSections(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "hero", decoded[0].Variant)
	assert.Equal(t, "Precision CNC", decoded[0].Fields["title"])
}
