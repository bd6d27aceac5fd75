package loader

import (
	"testing"

	"sl10n/core/document"
	"sl10n/core/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		Path:         "translations",
		DefaultLang:  "de",
		Ignore:       []string{"draft"},
		Format:       "yaml",
		Indent:       4,
		Strict:       true,
		WarnUnfilled: true,
	}

	opts, err := cfg.Options()
	require.NoError(t, err)

	l, err := New(locale.MustSchema("greeting"), opts...)
	require.NoError(t, err)

	assert.Equal(t, "translations", l.Path())
	assert.Equal(t, "de", l.DefaultLang())
	assert.IsType(t, &document.YAML{}, l.Backend())
	assert.True(t, l.strict)
	assert.True(t, l.warnUnfilled)
	assert.True(t, l.ignored("draft.yaml", "draft"))
}

func TestConfig_EmptyKeepsDefaults(t *testing.T) {
	opts, err := Config{}.Options()
	require.NoError(t, err)

	l, err := New(locale.MustSchema("greeting"), opts...)
	require.NoError(t, err)
	assert.Equal(t, DefaultPath, l.Path())
	assert.Equal(t, DefaultLang, l.DefaultLang())
	assert.Equal(t, "json", l.Backend().Ext())
}

func TestConfig_UnknownFormat(t *testing.T) {
	_, err := Config{Format: "xml"}.Options()
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}

func TestConfig_Schema(t *testing.T) {
	_, err := Config{}.Schema()
	assert.ErrorIs(t, err, ErrNoFields)

	s, err := Config{Fields: []string{"a", "b"}}.Schema()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Fields())
}
