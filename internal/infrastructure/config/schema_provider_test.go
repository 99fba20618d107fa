package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()
	require.NotEmpty(t, keys)

	seen := make(map[string]bool, len(keys))
	sections := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		sections[k.Section] = true
		assert.NotEmpty(t, k.Type, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}

	for _, s := range []string{SectionLightbox, SectionGallery, SectionKeybindings, SectionLogging, SectionAppearance} {
		assert.True(t, sections[s], "missing section %s", s)
	}
}

func TestSchemaProvider_Defaults(t *testing.T) {
	byKey := make(map[string]string)
	for _, k := range NewSchemaProvider().GetSchema() {
		byKey[k.Key] = k.Default
	}

	assert.Equal(t, "pointer", byKey["lightbox.input_mode"])
	assert.Equal(t, "2.0", byKey["lightbox.click_zoom_scale"])
	assert.Equal(t, "4.0", byKey["lightbox.max_scale"])
	assert.Equal(t, "escape, q", byKey["keybindings.close"])
	assert.Equal(t, "32", byKey["gallery.cache_size"])
}
